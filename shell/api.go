package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordhand/automatic"
	"github.com/domino14/wordhand/config"
	"github.com/domino14/wordhand/game"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/move"
	"github.com/domino14/wordhand/movegen"
	"github.com/domino14/wordhand/turnplayer"
)

const defaultGenPlays = 15

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (c *shellcmd) intOption(key string, defaultI int) (int, error) {
	v, ok := c.options[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

func (c *shellcmd) intArg(idx int, defaultI int) (int, error) {
	if len(c.args) <= idx {
		return defaultI, nil
	}
	return strconv.Atoi(c.args[idx])
}

func handLine(label string, t *game.Turn) string {
	return fmt.Sprintf("%v: %v(score %d)", label, t.Hand().String(), t.Score())
}

func (sc *ShellController) newSeries(cmd *shellcmd) (*Response, error) {
	numHands, err := cmd.intArg(0, sc.options.NumHands)
	if err != nil {
		return nil, err
	}
	if sc.curTurn != nil && sc.curTurn.Active() {
		return nil, game.ErrTurnInProgress
	}
	series, err := game.NewSeries(sc.lex, numHands, sc.options.HandSize, sc.rng)
	if err != nil {
		return nil, err
	}
	sc.series = series
	sc.curHand = nil
	sc.curTurn = nil
	return msg(fmt.Sprintf("New series of %d hands of %d tiles. Type `deal` for the first hand.",
		numHands, sc.options.HandSize)), nil
}

func (sc *ShellController) deal(cmd *shellcmd) (*Response, error) {
	if sc.series == nil {
		return nil, errNoSeries
	}
	rec, err := sc.series.NextHand()
	if err != nil {
		return nil, err
	}
	sc.curHand = rec
	sc.curTurn = nil
	return msg(fmt.Sprintf("Hand %d of %d\nCurrent hand: %v",
		len(sc.series.Hands()), sc.series.NumHands(), rec.Start().String())), nil
}

func (sc *ShellController) substitute(cmd *shellcmd) (*Response, error) {
	if sc.curHand == nil {
		return nil, errNoHand
	}
	if len(cmd.args) != 1 || utf8.RuneCountInString(cmd.args[0]) != 1 {
		return nil, errors.New("usage: sub <letter>")
	}
	letter, _ := utf8.DecodeRuneInString(cmd.args[0])
	if err := sc.curHand.Substitute(letter, sc.series.Randomizer()); err != nil {
		return nil, err
	}
	return msg("Current hand: " + sc.curHand.Start().String()), nil
}

// startTurn returns the human turn in progress, starting the first attempt
// on the hand if none has been started.
func (sc *ShellController) startTurn() (*game.Turn, error) {
	if sc.curHand == nil {
		return nil, errNoHand
	}
	if sc.curTurn != nil && sc.curTurn.Active() {
		return sc.curTurn, nil
	}
	if len(sc.curHand.Attempts()) > 0 {
		return nil, errors.New("this hand is over; `replay` it or `deal` the next one")
	}
	t, err := sc.curHand.NewTurn()
	if err != nil {
		return nil, err
	}
	sc.curTurn = t
	return t, nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <word>, or . to stop")
	}
	t, err := sc.startTurn()
	if err != nil {
		return nil, err
	}
	m, err := t.Submit(cmd.args[0])
	if err != nil {
		return nil, err
	}
	var ss strings.Builder
	switch {
	case m.Action() == move.MoveTypeStop:
	case m.Valid():
		fmt.Fprintf(&ss, "%q earned %d points. Total: %d points.\n", m.Word(), m.Score(), t.Score())
	default:
		fmt.Fprintf(&ss, "Invalid word (%v), please try again.\n", m.Rejection())
	}
	switch t.State() {
	case game.StateActive:
		ss.WriteString("Current hand: " + t.Hand().String())
	case game.StateStopped:
		fmt.Fprintf(&ss, "Hand ended. Total score: %d points.", t.Score())
	case game.StateExhausted:
		fmt.Fprintf(&ss, "Ran out of letters. Total score: %d points.", t.Score())
	}
	return msg(ss.String()), nil
}

func (sc *ShellController) replay(cmd *shellcmd) (*Response, error) {
	if sc.curHand == nil {
		return nil, errNoHand
	}
	if !sc.curHand.CanReplay() {
		if len(sc.curHand.Attempts()) == 0 {
			return nil, errors.New("play the hand before replaying it")
		}
		if sc.curHand.Current() != nil {
			return nil, game.ErrTurnInProgress
		}
		return nil, game.ErrNoReplay
	}
	t, err := sc.curHand.NewTurn()
	if err != nil {
		return nil, err
	}
	sc.curTurn = t
	return msg("Replaying. Current hand: " + t.Hand().String()), nil
}

func (sc *ShellController) computerPlay(cmd *shellcmd) (*Response, error) {
	if sc.curHand == nil {
		return nil, errNoHand
	}
	t, err := sc.curHand.NewComputerTurn()
	if err != nil {
		return nil, err
	}
	moves, err := turnplayer.PlayTurn(t, turnplayer.NewBotPlayer(sc.gen))
	if err != nil {
		return nil, err
	}
	var ss strings.Builder
	for _, m := range moves {
		ss.WriteString("Computer plays " + m.ShortDescription() + "\n")
	}
	fmt.Fprintf(&ss, "Computer total: %d points.", t.Score())
	return msg(ss.String()), nil
}

func moveTableHeader() string {
	return "     Word                Score"
}

func MoveTableRow(idx int, m *move.Move) string {
	return fmt.Sprintf("%3d: %-20s%-6d", idx+1, m.Word(), m.Score())
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	numPlays, err := cmd.intArg(0, defaultGenPlays)
	if err != nil {
		return nil, err
	}
	if sc.curHand == nil {
		return nil, errNoHand
	}
	hand := sc.curHand.Start()
	if sc.curTurn != nil && sc.curTurn.Active() {
		hand = sc.curTurn.Hand()
	}
	sc.gen.GenAll(hand, hand.Size())
	sc.curGenPlays = sc.gen.TopPlays(numPlays)
	if len(sc.curGenPlays) == 0 {
		return msg("No plays found for " + hand.String()), nil
	}
	var ss strings.Builder
	ss.WriteString(moveTableHeader() + "\n")
	for i, p := range sc.curGenPlays {
		ss.WriteString(MoveTableRow(i, p) + "\n")
	}
	return msg(ss.String()), nil
}

func (sc *ShellController) hand(cmd *shellcmd) (*Response, error) {
	if sc.curHand == nil {
		return nil, errNoHand
	}
	var ss strings.Builder
	ss.WriteString("Dealt: " + sc.curHand.Dealt().String() + "\n")
	if sc.curHand.Substituted() {
		ss.WriteString("After substitution: " + sc.curHand.Start().String() + "\n")
	}
	for i, t := range sc.curHand.Attempts() {
		ss.WriteString(handLine(fmt.Sprintf("Attempt %d (%v)", i+1, t.State()), t) + "\n")
	}
	if c := sc.curHand.Computer(); c != nil {
		ss.WriteString(handLine("Computer", c) + "\n")
	}
	fmt.Fprintf(&ss, "Hand score: %d", sc.curHand.Score())
	return msg(ss.String()), nil
}

func (sc *ShellController) summary(cmd *shellcmd) (*Response, error) {
	if sc.series == nil {
		return nil, errNoSeries
	}
	out, err := yaml.Marshal(sc.series.Summary())
	if err != nil {
		return nil, err
	}
	return msg(string(out)), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	numHands, err := cmd.intOption("hands", 100)
	if err != nil {
		return nil, err
	}
	var logw io.Writer = io.Discard
	if path, ok := cmd.options["log"]; ok {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		logw = f
	}
	var opts []movegen.Option
	if sc.options.ComputerWildcard {
		opts = append(opts, movegen.WithWildcardPlays())
	}
	runner := automatic.NewGameRunner(sc.lex, sc.options.HandSize, sc.rng, opts...)
	log.Info().Int("hands", numHands).Msg("autoplay-started")
	res, err := runner.Autoplay(context.Background(), numHands, logw)
	if err != nil {
		return nil, err
	}
	var ss strings.Builder
	ss.WriteString(res.String())
	if err := res.Histogram(&ss, 50); err != nil {
		return nil, err
	}
	return msg(ss.String()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.options.String()), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <option> <value>")
	}
	opt, value := cmd.args[0], cmd.args[1]
	if err := sc.options.Set(opt, value); err != nil {
		return nil, err
	}
	if opt == "wildcard" {
		sc.initGenerator()
	}
	return msg("set " + opt + " to " + value), nil
}

// switchLexicon shows the lexicon in use or, given a file, switches to it.
// A relative file is looked up in the data path. Switching abandons the
// series in progress.
func (sc *ShellController) switchLexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.lex.Info().String()), nil
	}
	if sc.curTurn != nil && sc.curTurn.Active() {
		return nil, game.ErrTurnInProgress
	}
	path := cmd.args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(sc.config.GetString(config.ConfigDataPath), path)
	}
	lex, err := lexicon.LoadCached(path, sc.config.GetBool(config.ConfigIndexByInitial))
	if err != nil {
		return nil, err
	}
	sc.lex = lex
	sc.series = nil
	sc.curHand = nil
	sc.curTurn = nil
	sc.curGenPlays = nil
	sc.initGenerator()
	log.Info().Str("lexicon", lex.Name()).Int("words", lex.NumWords()).Msg("switched-lexicon")
	return msg(lex.Info().String()), nil
}

package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/config"
	"github.com/domino14/wordhand/game"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/move"
	"github.com/domino14/wordhand/movegen"
	"github.com/domino14/wordhand/turnplayer"
)

var (
	errNoData            = errors.New("no data in line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("sending quit signal")

	errNoSeries = errors.New("no series in progress; start one with `series`")
	errNoHand   = errors.New("no hand dealt; deal one with `deal`")
)

type ShellController struct {
	l        *readline.Instance
	out      io.Writer
	config   *config.Config
	execPath string

	lex     *lexicon.WordIndex
	options *turnplayer.GameOptions
	rng     alphabet.Randomizer
	gen     *movegen.ExhaustiveGenerator

	series      *game.Series
	curHand     *game.HandRecord
	curTurn     *game.Turn
	curGenPlays []*move.Move
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// Randomizer builds the randomizer the config asks for: seeded if rng-seed
// is set, otherwise the default.
func Randomizer(cfg *config.Config) alphabet.Randomizer {
	if seed := cfg.GetUint64(config.ConfigRNGSeed); seed != 0 {
		return alphabet.NewSeededRandomizer(seed)
	}
	return alphabet.DefaultRandomizer()
}

func newController(cfg *config.Config, lex *lexicon.WordIndex, out io.Writer) *ShellController {
	opts := &turnplayer.GameOptions{}
	opts.SetDefaults(cfg)
	sc := &ShellController{
		out:     out,
		config:  cfg,
		lex:     lex,
		options: opts,
		rng:     Randomizer(cfg),
	}
	sc.initGenerator()
	return sc
}

func NewShellController(cfg *config.Config, lex *lexicon.WordIndex, execPath string) *ShellController {
	prompt := "\033[31mwordhand>\033[0m "
	sc := newController(cfg, lex, nil)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "/tmp/wordhand-readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	sc.execPath = execPath
	return sc
}

func (sc *ShellController) initGenerator() {
	var opts []movegen.Option
	if sc.options.ComputerWildcard {
		opts = append(opts, movegen.WithWildcardPlays())
	}
	sc.gen = movegen.NewExhaustiveGenerator(sc.lex, opts...)
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") && len(fields[idx]) > 1 {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		if sig != nil {
			sig <- syscall.SIGINT
		}
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "series":
		return sc.newSeries(cmd)
	case "deal":
		return sc.deal(cmd)
	case "sub":
		return sc.substitute(cmd)
	case "play":
		return sc.play(cmd)
	case game.StopSignal:
		return sc.play(&shellcmd{cmd: "play", args: []string{game.StopSignal}})
	case "replay":
		return sc.replay(cmd)
	case "cpu":
		return sc.computerPlay(cmd)
	case "gen":
		return sc.generate(cmd)
	case "hand":
		return sc.hand(cmd)
	case "summary":
		return sc.summary(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "set":
		return sc.set(cmd)
	case "lexicon":
		return sc.switchLexicon(cmd)
	case "script":
		return sc.script(cmd)
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil, fmt.Errorf("unrecognized command: %v", cmd.cmd)
	}
}

// Execute runs a single command line, as given on the command line.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line, sig)
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.standardModeSwitch(line, sig)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup is called once the shell has quit.
func (sc *ShellController) Cleanup() {
	if sc.series != nil {
		log.Info().Int("human", sc.series.HumanTotal()).
			Int("computer", sc.series.ComputerTotal()).Msg("series-totals")
	}
}

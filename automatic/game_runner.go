// Package automatic has the computer play series of hands by itself, to
// see how well it scores.
package automatic

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/game"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/movegen"
	"github.com/domino14/wordhand/turnplayer"
)

// LogHeader is the first line of an autoplay log.
const LogHeader = "handID,hand,words,score,total\n"

// GameRunner plays hands with the computer player.
type GameRunner struct {
	lex      lexicon.Lexicon
	movegen  movegen.MoveGenerator
	bot      *turnplayer.BotPlayer
	rng      alphabet.Randomizer
	handSize int
}

// NewGameRunner creates a runner dealing hands of handSize tiles. A nil rng
// uses the default randomizer.
func NewGameRunner(lex lexicon.Lexicon, handSize int, rng alphabet.Randomizer,
	opts ...movegen.Option) *GameRunner {

	gen := movegen.NewExhaustiveGenerator(lex, opts...)
	return &GameRunner{
		lex:      lex,
		movegen:  gen,
		bot:      turnplayer.NewBotPlayer(gen),
		rng:      rng,
		handSize: handSize,
	}
}

// Autoplay plays a series of numHands hands and writes one CSV line per
// hand to w. If ctx is cancelled it stops between hands and returns the
// results so far along with the context's error.
func (r *GameRunner) Autoplay(ctx context.Context, numHands int, w io.Writer) (*Results, error) {
	series, err := game.NewSeries(r.lex, numHands, r.handSize, r.rng)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, LogHeader); err != nil {
		return nil, err
	}
	scores := make([]float64, 0, numHands)
	for i := 1; i <= numHands; i++ {
		if err := ctx.Err(); err != nil {
			log.Info().Int("hands-played", i-1).Msg("autoplay-stopped")
			return newResults(scores), err
		}
		rec, err := series.NextHand()
		if err != nil {
			return newResults(scores), err
		}
		turn, err := rec.NewComputerTurn()
		if err != nil {
			return newResults(scores), err
		}
		if _, err := turnplayer.PlayTurn(turn, r.bot); err != nil {
			return newResults(scores), err
		}
		scores = append(scores, float64(turn.Score()))

		_, err = fmt.Fprintf(w, "%v,%v,%v,%v,%v\n",
			i,
			strings.TrimSpace(rec.Dealt().String()),
			strings.Join(turn.Words(), " "),
			turn.Score(),
			series.ComputerTotal())
		if err != nil {
			return newResults(scores), err
		}
		if i%1000 == 0 {
			log.Info().Int("hands-played", i).Msg("autoplay-progress")
		}
	}
	return newResults(scores), nil
}

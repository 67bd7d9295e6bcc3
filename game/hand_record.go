package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/lexicon"
)

// maxAttempts is the first play of a hand plus its one replay.
const maxAttempts = 2

// HandRecord is one dealt hand of a series: the optional substitution made
// before play, the human attempts, and the computer's turn if it played.
type HandRecord struct {
	lex lexicon.Lexicon

	dealt       alphabet.Hand
	start       alphabet.Hand
	substituted bool

	attempts []*Turn
	computer *Turn
}

func NewHandRecord(dealt alphabet.Hand, lex lexicon.Lexicon) *HandRecord {
	return &HandRecord{lex: lex, dealt: dealt, start: dealt}
}

// Substitute swaps every copy of letter for a letter not in the hand. It is
// allowed once, before any turn has been started.
func (h *HandRecord) Substitute(letter rune, rng alphabet.Randomizer) error {
	if h.substituted || len(h.attempts) > 0 || h.computer != nil {
		return ErrHandInPlay
	}
	hand, err := h.start.Substitute(letter, rng)
	if err != nil {
		return err
	}
	if e := log.Debug(); e.Enabled() {
		e.Str("letter", string(letter)).Str("before", h.start.String()).
			Str("after", hand.String()).Msg("substituted")
	}
	h.start = hand
	h.substituted = true
	return nil
}

func (h *HandRecord) inProgress() bool {
	if h.computer != nil && h.computer.Active() {
		return true
	}
	return lo.ContainsBy(h.attempts, (*Turn).Active)
}

// NewTurn starts a human attempt. The second call, made once the first
// attempt is over, is the replay: it starts again from the same hand.
// Words the computer already played on this hand are refused.
func (h *HandRecord) NewTurn() (*Turn, error) {
	if h.inProgress() {
		return nil, ErrTurnInProgress
	}
	if len(h.attempts) >= maxAttempts {
		return nil, ErrNoReplay
	}
	claimed := NewPlayedWords()
	if h.computer != nil {
		claimed = h.computer.Played()
	}
	t := NewTurn(h.start, h.lex, claimed)
	h.attempts = append(h.attempts, t)
	return t, nil
}

// NewComputerTurn starts the computer's turn over the same hand the human
// plays.
func (h *HandRecord) NewComputerTurn() (*Turn, error) {
	if h.inProgress() {
		return nil, ErrTurnInProgress
	}
	if h.computer != nil {
		return nil, ErrComputerPlayed
	}
	h.computer = NewTurn(h.start, h.lex, nil)
	return h.computer, nil
}

// Score is the best of the human attempts.
func (h *HandRecord) Score() int {
	return lo.Max(lo.Map(h.attempts, func(t *Turn, _ int) int { return t.Score() }))
}

// ComputerScore is 0 if the computer has not played this hand.
func (h *HandRecord) ComputerScore() int {
	if h.computer == nil {
		return 0
	}
	return h.computer.Score()
}

func (h *HandRecord) Dealt() alphabet.Hand {
	return h.dealt
}

// Start is the hand every turn begins from: the dealt hand after any
// substitution.
func (h *HandRecord) Start() alphabet.Hand {
	return h.start
}

func (h *HandRecord) Substituted() bool {
	return h.substituted
}

func (h *HandRecord) Attempts() []*Turn {
	return h.attempts
}

// Current returns the attempt or computer turn still being played, if any.
func (h *HandRecord) Current() *Turn {
	if h.computer != nil && h.computer.Active() {
		return h.computer
	}
	t, _ := lo.Find(h.attempts, (*Turn).Active)
	return t
}

// CanReplay is true once the first attempt is over and no replay has been
// made.
func (h *HandRecord) CanReplay() bool {
	return len(h.attempts) == 1 && !h.inProgress()
}

func (h *HandRecord) Computer() *Turn {
	return h.computer
}

func (h *HandRecord) String() string {
	return fmt.Sprintf("dealt: %v start: %v attempts: %d score: %d computer: %d",
		h.dealt.String(), h.start.String(), len(h.attempts), h.Score(), h.ComputerScore())
}

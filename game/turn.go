// Package game runs hands: a Turn is one attempt at playing a hand, a
// HandRecord tracks the attempts made on one dealt hand, and a Series
// deals and totals a number of hands.
package game

import (
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/equity"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/move"
	"github.com/domino14/wordhand/rules"
)

// StopSignal ends a turn when submitted in place of a word.
const StopSignal = "."

type PlayState uint8

const (
	StateActive PlayState = iota
	// StateStopped means the player chose to stop, or the computer passed.
	StateStopped
	// StateExhausted means every tile has been used.
	StateExhausted
)

func (s PlayState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateStopped:
		return "stopped"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// PlayedWords is a set of words.
type PlayedWords map[string]struct{}

func NewPlayedWords(words ...string) PlayedWords {
	p := make(PlayedWords, len(words))
	for _, w := range words {
		p.Add(w)
	}
	return p
}

func (p PlayedWords) Add(word string) {
	p[rules.Normalize(word)] = struct{}{}
}

func (p PlayedWords) Has(word string) bool {
	_, ok := p[rules.Normalize(word)]
	return ok
}

// Words returns the set in sorted order.
func (p PlayedWords) Words() []string {
	words := make([]string, 0, len(p))
	for w := range p {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Turn is a single attempt at playing out a hand.
type Turn struct {
	lex     lexicon.Lexicon
	claimed PlayedWords

	dealt   alphabet.Hand
	hand    alphabet.Hand
	score   int
	words   []string
	history []*move.Move
	state   PlayState
}

// NewTurn starts a turn over hand. Words in claimed are refused no matter
// what the validator says; claimed may be nil.
func NewTurn(hand alphabet.Hand, lex lexicon.Lexicon, claimed PlayedWords) *Turn {
	if claimed == nil {
		claimed = NewPlayedWords()
	}
	t := &Turn{
		lex:     lex,
		claimed: claimed,
		dealt:   hand,
		hand:    hand,
	}
	if hand.Size() == 0 {
		t.state = StateExhausted
	}
	return t
}

// Submit plays word. A rejected word is not an error: the returned move
// carries the reason, and the letters it shares with the hand are used up
// all the same.
func (t *Turn) Submit(word string) (*move.Move, error) {
	if t.state != StateActive {
		return nil, ErrTurnOver
	}
	handSize := t.hand.Size()
	word = strings.TrimSpace(word)
	if word == StopSignal {
		m := move.NewStopMove(handSize)
		t.history = append(t.history, m)
		t.state = StateStopped
		return m, nil
	}

	word = rules.Normalize(word)
	m := move.NewPlayMove(word, handSize)
	if t.claimed.Has(word) {
		m.Reject(ErrWordClaimed)
	} else if err := rules.Validate(word, t.hand, t.lex); err != nil {
		m.Reject(err)
	} else {
		m.SetScore(equity.WordScore(word, handSize))
		t.score += m.Score()
		t.words = append(t.words, word)
	}
	t.hand = t.hand.Update(word)
	t.history = append(t.history, m)

	log.Debug().Str("word", word).Int("score", m.Score()).Err(m.Rejection()).
		Str("hand", t.hand.String()).Int("total", t.score).Msg("submitted")

	if t.hand.Size() == 0 {
		t.state = StateExhausted
	}
	return m, nil
}

// Pass ends the turn without a play. The computer passes when it has no
// word left to play.
func (t *Turn) Pass() (*move.Move, error) {
	if t.state != StateActive {
		return nil, ErrTurnOver
	}
	m := move.NewPassMove(t.hand.Size())
	t.history = append(t.history, m)
	t.state = StateStopped
	return m, nil
}

// Played returns the words of every accepted play.
func (t *Turn) Played() PlayedWords {
	return NewPlayedWords(t.words...)
}

// Words returns the accepted words in the order they were played.
func (t *Turn) Words() []string {
	return slices.Clone(t.words)
}

func (t *Turn) Hand() alphabet.Hand {
	return t.hand
}

// Dealt is the hand the turn started with.
func (t *Turn) Dealt() alphabet.Hand {
	return t.dealt
}

func (t *Turn) Score() int {
	return t.score
}

func (t *Turn) State() PlayState {
	return t.state
}

func (t *Turn) Active() bool {
	return t.state == StateActive
}

func (t *Turn) History() []*move.Move {
	return t.history
}

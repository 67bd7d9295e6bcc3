// Package movegen finds the words a hand can play, and the best of them.
// It is the computer opponent's search.
package movegen

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/equity"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/move"
	"github.com/domino14/wordhand/rules"
)

// MoveGenerator is a generic interface for generating moves.
type MoveGenerator interface {
	GenAll(hand alphabet.Hand, handSize int) []*move.Move
	BestPlay(hand alphabet.Hand, handSize int) *move.Move
	Plays() []*move.Move
	SetPlayRecorder(pr PlayRecorderFunc)
}

// Option configures an ExhaustiveGenerator.
type Option func(*ExhaustiveGenerator)

// WithWildcardPlays lets the generator play the wildcard in place of a
// vowel the hand is missing. Without it, dictionary words are only tried
// as they are spelled.
func WithWildcardPlays() Option {
	return func(gen *ExhaustiveGenerator) {
		gen.wildcardPlays = true
	}
}

// ExhaustiveGenerator walks every dictionary word shorter than the hand and
// keeps those the hand can play. Lengths are visited in ascending order and
// words within a length in dictionary order, so the first of several equally
// scored plays is always the one kept.
type ExhaustiveGenerator struct {
	lex           lexicon.Lexicon
	wildcardPlays bool

	playRecorder PlayRecorderFunc
	plays        []*move.Move
	winner       *move.Move

	hand     alphabet.Hand
	handSize int

	bestCache map[uint64]*move.Move
}

func NewExhaustiveGenerator(lex lexicon.Lexicon, opts ...Option) *ExhaustiveGenerator {
	gen := &ExhaustiveGenerator{
		lex:          lex,
		playRecorder: AllPlaysRecorder,
		bestCache:    make(map[uint64]*move.Move),
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

func (gen *ExhaustiveGenerator) SetPlayRecorder(pr PlayRecorderFunc) {
	gen.playRecorder = pr
}

// Plays returns the plays recorded by the last GenAll call.
func (gen *ExhaustiveGenerator) Plays() []*move.Move {
	return gen.plays
}

// GenAll records every play hand can make with words of at least two and
// fewer than handSize letters. handSize is also the size the plays are
// scored against.
func (gen *ExhaustiveGenerator) GenAll(hand alphabet.Hand, handSize int) []*move.Move {
	gen.plays = nil
	gen.winner = nil
	gen.hand = hand
	gen.handSize = handSize

	considered := 0
	for _, length := range gen.lex.Lengths() {
		if length < 2 {
			continue
		}
		if length >= handSize {
			break
		}
		for word := range gen.lex.WordsOfLength(length) {
			considered++
			play, ok := gen.playable(word)
			if !ok {
				continue
			}
			gen.playRecorder(gen, play, equity.WordScore(play, handSize))
		}
	}
	if e := log.Debug(); e.Enabled() {
		e.Str("hand", hand.String()).Int("hand-size", handSize).
			Int("considered", considered).Int("recorded", len(gen.plays)).
			Msg("gen-all")
	}
	return gen.plays
}

// playable returns the form of word the hand would play, if any.
func (gen *ExhaustiveGenerator) playable(word string) (string, bool) {
	if rules.IsValidWord(word, gen.hand, gen.lex) {
		return word, true
	}
	if !gen.wildcardPlays || !gen.hand.Has(alphabet.Wildcard) {
		return "", false
	}
	blanked, ok := blankMissingVowel(word, gen.hand)
	if !ok || !rules.IsValidWord(blanked, gen.hand, gen.lex) {
		return "", false
	}
	return blanked, true
}

// blankMissingVowel replaces the leftmost vowel of word that hand has run
// out of with the wildcard.
func blankMissingVowel(word string, hand alphabet.Hand) (string, bool) {
	runes := []rune(word)
	used := make(map[rune]int)
	for i, r := range runes {
		used[r]++
		if alphabet.IsVowel(r) && used[r] > hand.Count(r) {
			runes[i] = alphabet.Wildcard
			return string(runes), true
		}
	}
	return "", false
}

// BestPlay returns the highest scoring play, or a pass if the hand cannot
// play anything. Results are cached per hand and size.
func (gen *ExhaustiveGenerator) BestPlay(hand alphabet.Hand, handSize int) *move.Move {
	key := bestPlayKey(hand, handSize)
	if m, ok := gen.bestCache[key]; ok {
		log.Debug().Str("hand", hand.String()).Msg("best-play-cache-hit")
		return copyMove(m)
	}
	recorder := gen.playRecorder
	gen.SetPlayRecorder(TopPlayOnlyRecorder)
	gen.GenAll(hand, handSize)
	gen.SetPlayRecorder(recorder)

	best := gen.winner
	if best == nil {
		best = move.NewPassMove(handSize)
	}
	gen.bestCache[key] = best
	return copyMove(best)
}

// TopPlays returns at most n of the plays from the last GenAll, best first.
// Equal scores keep the order they were found in.
func (gen *ExhaustiveGenerator) TopPlays(n int) []*move.Move {
	sorted := slices.Clone(gen.plays)
	slices.SortStableFunc(sorted, func(a, b *move.Move) int {
		return b.Score() - a.Score()
	})
	return sorted[:max(0, min(n, len(sorted)))]
}

func bestPlayKey(hand alphabet.Hand, handSize int) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%s/%d", hand.Hashable(), handSize))
}

func copyMove(m *move.Move) *move.Move {
	c := *m
	return &c
}

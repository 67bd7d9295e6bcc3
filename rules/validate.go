// Package rules decides whether a word can be played out of a hand.
package rules

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/lexicon"
)

var (
	ErrWordTooShort      = errors.New("words must be at least two letters long")
	ErrTileNotInHand     = errors.New("tile is not in the hand")
	ErrNotEnoughTiles    = errors.New("not enough copies of tile in the hand")
	ErrMultipleWildcards = errors.New("only one wildcard may be played")
	ErrNotInLexicon      = errors.New("word is not in the lexicon")
)

// Normalize returns word the way it is looked up: lowercased.
func Normalize(word string) string {
	return cases.Lower(language.English).String(word)
}

// Validate returns nil if word can be played out of hand and is a word of
// lex, or the reason it cannot. Neither hand nor lex is modified.
func Validate(word string, hand alphabet.Hand, lex lexicon.Lexicon) error {
	if utf8.RuneCountInString(word) <= 1 {
		return ErrWordTooShort
	}
	word = Normalize(word)

	needed := make(map[rune]int)
	for _, r := range word {
		needed[r]++
	}
	for _, r := range word {
		if !hand.Has(r) {
			return fmt.Errorf("%w: %q", ErrTileNotInHand, r)
		}
		if needed[r] > hand.Count(r) {
			return fmt.Errorf("%w: %q", ErrNotEnoughTiles, r)
		}
	}

	switch alphabet.CountWildcards(word) {
	case 0:
		if !lex.HasWord(word) {
			return ErrNotInLexicon
		}
		return nil
	case 1:
		for _, v := range alphabet.Vowels {
			candidate := strings.Replace(word, string(alphabet.Wildcard), string(v), 1)
			if lex.HasWord(candidate) {
				log.Debug().Str("word", word).Str("as", candidate).Msg("wildcard-resolved")
				return nil
			}
		}
		return ErrNotInLexicon
	default:
		return ErrMultipleWildcards
	}
}

// IsValidWord is Validate reduced to a yes or no.
func IsValidWord(word string, hand alphabet.Hand, lex lexicon.Lexicon) bool {
	return Validate(word, hand, lex) == nil
}

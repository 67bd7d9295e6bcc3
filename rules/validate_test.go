package rules

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/testhelpers"
)

type validtest struct {
	hand     map[rune]int
	word     string
	expected bool
}

var validWordCases = []validtest{
	{map[rune]int{'h': 1, 'e': 1, 'l': 2, 'o': 1}, "hello", true},
	{map[rune]int{'r': 1, 'a': 3, 'p': 2, 'e': 1, 't': 1, 'u': 1}, "Rapture", false},
	{map[rune]int{'n': 1, 'h': 1, 'o': 1, 'y': 1, 'd': 1, 'w': 1, 'e': 2}, "Honey", true},
	{map[rune]int{'r': 1, 'a': 3, 'p': 2, 't': 1, 'u': 2}, "honey", false},
	{map[rune]int{'e': 1, 'v': 2, 'n': 1, 'i': 1, 'l': 2}, "EVIL", true},
	{map[rune]int{'e': 1, 'v': 2, 'n': 1, 'i': 1, 'l': 2}, "Even", false},
}

var wildcardCases = []validtest{
	{map[rune]int{'a': 1, 'r': 1, 'e': 1, 'j': 2, 'm': 1, '*': 1}, "e*m", false},
	{map[rune]int{'n': 1, 'h': 1, '*': 1, 'y': 1, 'd': 1, 'w': 1, 'e': 2}, "honey", false},
	{map[rune]int{'n': 1, 'h': 1, '*': 1, 'y': 1, 'd': 1, 'w': 1, 'e': 2}, "h*ney", true},
	{map[rune]int{'c': 1, 'o': 1, '*': 1, 'w': 1, 's': 1, 'z': 1, 'y': 2}, "c*wz", false},
}

func TestIsValidWord(t *testing.T) {
	is := is.New(t)
	lex := testhelpers.EnglishLexicon()
	for _, tc := range append(validWordCases, wildcardCases...) {
		hand := alphabet.HandFromCounts(tc.hand)
		before := hand.Copy()
		is.Equal(IsValidWord(tc.word, hand, lex), tc.expected)
		is.True(hand.Equal(before))
	}
}

func TestKeyedIndexAgrees(t *testing.T) {
	is := is.New(t)
	plain := testhelpers.EnglishLexicon()
	keyed := testhelpers.EnglishLexicon(lexicon.KeyByInitial())
	for _, tc := range append(validWordCases, wildcardCases...) {
		hand := alphabet.HandFromCounts(tc.hand)
		is.Equal(IsValidWord(tc.word, hand, plain), IsValidWord(tc.word, hand, keyed))
	}
}

func TestValidateReasons(t *testing.T) {
	lex := testhelpers.EnglishLexicon()
	type reasontest struct {
		hand string
		word string
		err  error
	}
	cases := []reasontest{
		{"aeiou*", "a", ErrWordTooShort},
		{"", "", ErrWordTooShort},
		{"ab*", "ba", ErrNotInLexicon},
		{"cat", "dog", ErrTileNotInHand},
		{"helo", "hello", ErrNotEnoughTiles},
		{"h**ny", "h*n*y", ErrMultipleWildcards},
		{"cw*", "zz", ErrTileNotInHand},
		{"tac", "CAT", nil},
		{"cw*", "c*w", nil},
	}
	for _, tc := range cases {
		is := is.New(t)
		err := Validate(tc.word, alphabet.HandFromString(tc.hand), lex)
		if tc.err == nil {
			is.NoErr(err)
			continue
		}
		is.True(errors.Is(err, tc.err))
	}
}

func TestZeroCountTileIsNotInHand(t *testing.T) {
	is := is.New(t)
	lex := testhelpers.EnglishLexicon()
	hand := alphabet.HandFromCounts(map[rune]int{'i': 1, 't': 0, 'n': 1})
	is.True(errors.Is(Validate("it", hand, lex), ErrTileNotInHand))
	is.NoErr(Validate("in", hand, lex))
}

// Any word that validates never needs more of a tile than the hand holds.
func TestValidWordsFitInHand(t *testing.T) {
	is := is.New(t)
	lex := testhelpers.EnglishLexicon()
	rng := testhelpers.SeededRandomizer(7)
	for i := 0; i < 200; i++ {
		hand, err := alphabet.Deal(8, rng)
		is.NoErr(err)
		for _, w := range testhelpers.EnglishWords() {
			if !IsValidWord(w, hand, lex) {
				continue
			}
			for _, r := range w {
				is.True(alphabet.HandFromString(w).Count(r) <= hand.Count(r))
			}
		}
	}
}

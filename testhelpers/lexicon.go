// Package testhelpers holds fixtures shared by the tests of several packages.
package testhelpers

import (
	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/lexicon"
)

// englishWords is a small slice of an English dictionary, grouped by length
// in the order a dictionary file would list them.
var englishWords = []string{
	"a", "i",
	"aa", "ab", "ad", "an", "at", "be", "do", "he", "hi", "in", "it", "no",
	"of", "oh", "on", "so", "to", "we",
	"cat", "cow", "dog", "eon", "hen", "hey", "one", "owe", "was", "wed", "yen",
	"caws", "cows", "even", "evil", "fork", "live", "veil", "vile", "weed", "when",
	"hello", "honey", "quail", "snowy", "wails",
	"scored",
	"outgnaw", "rapture", "waybill",
}

// EnglishLexicon returns a fresh index over the fixture word list.
func EnglishLexicon(opts ...lexicon.Option) *lexicon.WordIndex {
	return lexicon.FromWords("english", englishWords, opts...)
}

// EnglishWords returns a copy of the fixture word list.
func EnglishWords() []string {
	return append([]string(nil), englishWords...)
}

// SeededRandomizer gives tests a reproducible deal.
func SeededRandomizer(seed uint64) alphabet.Randomizer {
	return alphabet.NewSeededRandomizer(seed)
}

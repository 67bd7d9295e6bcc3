// Package alphabet defines the tiles of the game, their point values, and
// the Hand: the multiset of tiles a player draws and plays from.
package alphabet

import (
	"strings"
)

const (
	// Wildcard is the tile that can stand in for any vowel. It is dealt
	// exactly once into every hand and is worth no points.
	Wildcard = '*'

	Vowels     = "aeiou"
	Consonants = "bcdfghjklmnpqrstvwxyz"
	Letters    = "abcdefghijklmnopqrstuvwxyz"
)

// IsVowel returns true if r is one of the five lowercase vowels.
func IsVowel(r rune) bool {
	return strings.ContainsRune(Vowels, r)
}

// IsLetter returns true if r is a lowercase letter a-z.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsTile returns true if r can appear on a tile: a lowercase letter or the
// wildcard.
func IsTile(r rune) bool {
	return IsLetter(r) || r == Wildcard
}

// CountWildcards returns the number of wildcard tiles in word.
func CountWildcards(word string) int {
	return strings.Count(word, string(Wildcard))
}

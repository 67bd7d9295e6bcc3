// Package equity computes what a play is worth.
package equity

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/domino14/wordhand/alphabet"
)

// LetterPoints is the sum of the point values of the tiles in word.
func LetterPoints(word string) int {
	return lo.SumBy([]rune(strings.ToLower(word)), alphabet.LetterValue)
}

// LengthBonus rewards playing a long word out of the hand and penalizes the
// tiles left unplayed. It is never less than 1.
func LengthBonus(wordLen, handSize int) int {
	return max(1, 7*wordLen-3*(handSize-wordLen))
}

// WordScore returns the score of an already validated word played out of a
// hand holding handSize tiles.
func WordScore(word string, handSize int) int {
	return LetterPoints(word) * LengthBonus(utf8.RuneCountInString(word), handSize)
}

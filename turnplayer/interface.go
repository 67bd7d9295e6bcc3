package turnplayer

import (
	"errors"

	"github.com/domino14/wordhand/alphabet"
)

// ErrPass is returned by a WordSource that has no word to offer.
var ErrPass = errors.New("no word to play")

// WordSource supplies the words of a turn, one at a time. Humans, scripts
// and the computer all play through it.
type WordSource interface {
	// NextWord returns the word to submit against hand: a word, or
	// game.StopSignal to stop. It returns ErrPass if it has nothing to play.
	NextWord(hand alphabet.Hand) (string, error)
}

// WordSourceFunc adapts a function to a WordSource.
type WordSourceFunc func(hand alphabet.Hand) (string, error)

func (f WordSourceFunc) NextWord(hand alphabet.Hand) (string, error) {
	return f(hand)
}

package move

import (
	"fmt"
)

// MoveType is a type of move; a play, a pass or a stop.
type MoveType uint8

const (
	MoveTypeUnset MoveType = iota
	MoveTypePlay
	// MoveTypePass is made by the computer when no word can be played.
	MoveTypePass
	// MoveTypeStop is the player ending the turn on purpose.
	MoveTypeStop
)

// Move is a word submitted against a hand. A play move resolves either to
// a score or to a rejection; pass and stop moves score nothing.
type Move struct {
	action   MoveType
	word     string
	handSize int
	score    int
	rejected error
}

// NewPlayMove creates an unscored play of word out of a hand that holds
// handSize tiles.
func NewPlayMove(word string, handSize int) *Move {
	return &Move{action: MoveTypePlay, word: word, handSize: handSize}
}

// NewScoringMove creates an accepted play with its score already set.
func NewScoringMove(word string, handSize, score int) *Move {
	return &Move{action: MoveTypePlay, word: word, handSize: handSize, score: score}
}

func NewPassMove(handSize int) *Move {
	return &Move{action: MoveTypePass, handSize: handSize}
}

func NewStopMove(handSize int) *Move {
	return &Move{action: MoveTypeStop, handSize: handSize}
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		if m.rejected != nil {
			return fmt.Sprintf("<action: play word: %v hand: %v rejected: %v>",
				m.word, m.handSize, m.rejected)
		}
		return fmt.Sprintf("<action: play word: %v hand: %v score: %v>",
			m.word, m.handSize, m.score)
	case MoveTypePass:
		return fmt.Sprintf("<action: pass hand: %v>", m.handSize)
	case MoveTypeStop:
		return fmt.Sprintf("<action: stop hand: %v>", m.handSize)
	}
	return "<Unhandled move>"
}

func (m *Move) MoveTypeString() string {
	switch m.action {
	case MoveTypePlay:
		return "Play"
	case MoveTypePass:
		return "Pass"
	case MoveTypeStop:
		return "Stop"
	}
	return "UNHANDLED"
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		if m.rejected != nil {
			return fmt.Sprintf("%v (invalid: %v)", m.word, m.rejected)
		}
		return fmt.Sprintf("%v (%d)", m.word, m.score)
	case MoveTypePass:
		return "(Pass)"
	case MoveTypeStop:
		return "(Stop)"
	}
	return "UNHANDLED"
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Word() string {
	return m.word
}

// HandSize is the number of tiles in the hand when the move was made.
func (m *Move) HandSize() int {
	return m.handSize
}

func (m *Move) Score() int {
	return m.score
}

func (m *Move) SetScore(s int) {
	m.score = s
}

// Reject marks the play as invalid; its score becomes 0.
func (m *Move) Reject(reason error) {
	m.rejected = reason
	m.score = 0
}

// Rejection is why the play was refused, or nil.
func (m *Move) Rejection() error {
	return m.rejected
}

// Valid is true for an accepted play.
func (m *Move) Valid() bool {
	return m.action == MoveTypePlay && m.rejected == nil
}

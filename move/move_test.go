package move

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestPlayMoveLifecycle(t *testing.T) {
	is := is.New(t)
	m := NewPlayMove("honey", 7)
	is.Equal(m.Action(), MoveTypePlay)
	is.True(m.Valid())
	m.SetScore(290)
	is.Equal(m.ShortDescription(), "honey (290)")

	reason := errors.New("not a word")
	m.Reject(reason)
	is.True(!m.Valid())
	is.Equal(m.Score(), 0)
	is.Equal(m.Rejection(), reason)
	is.Equal(m.ShortDescription(), "honey (invalid: not a word)")
	is.Equal(m.String(), "<action: play word: honey hand: 7 rejected: not a word>")
}

func TestNonPlayMoves(t *testing.T) {
	is := is.New(t)
	p := NewPassMove(5)
	is.True(!p.Valid())
	is.Equal(p.Score(), 0)
	is.Equal(p.MoveTypeString(), "Pass")
	is.Equal(p.ShortDescription(), "(Pass)")

	s := NewStopMove(3)
	is.Equal(s.HandSize(), 3)
	is.Equal(s.MoveTypeString(), "Stop")
	is.Equal(s.String(), "<action: stop hand: 3>")
}

func TestScoringMove(t *testing.T) {
	is := is.New(t)
	m := NewScoringMove("was", 7, 54)
	is.True(m.Valid())
	is.Equal(m.Word(), "was")
	is.Equal(m.String(), "<action: play word: was hand: 7 score: 54>")
}

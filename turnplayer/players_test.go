package turnplayer

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/game"
	"github.com/domino14/wordhand/move"
	"github.com/domino14/wordhand/movegen"
	"github.com/domino14/wordhand/testhelpers"
)

func descriptions(moves []*move.Move) []string {
	return lo.Map(moves, func(m *move.Move, _ int) string { return m.ShortDescription() })
}

func TestScriptedPlayer(t *testing.T) {
	is := is.New(t)
	turn := game.NewTurn(alphabet.HandFromString("honeyw*"), testhelpers.EnglishLexicon(), nil)
	moves, err := PlayTurn(turn, NewScriptedPlayer("hen", "xyz", "we"))
	is.NoErr(err)
	assert.Equal(t, []string{
		"hen (54)",
		"xyz (invalid: tile is not in the hand: 'x')",
		"we (invalid: tile is not in the hand: 'e')",
		"(Stop)",
	}, descriptions(moves))
	is.Equal(turn.Score(), 54)
	is.True(turn.Hand().Equal(alphabet.HandFromString("o*")))
}

func TestBotPlayer(t *testing.T) {
	is := is.New(t)
	lex := testhelpers.EnglishLexicon()
	bot := NewBotPlayer(movegen.NewExhaustiveGenerator(lex))
	turn := game.NewTurn(alphabet.HandFromString("honeyw*"), lex, nil)
	moves, err := PlayTurn(turn, bot)
	is.NoErr(err)
	assert.Equal(t, []string{"honey (319)", "(Pass)"}, descriptions(moves))
	is.Equal(turn.State(), game.StateStopped)
	is.True(turn.Played().Has("honey"))
}

func TestBotPlaysUntilExhausted(t *testing.T) {
	is := is.New(t)
	lex := testhelpers.EnglishLexicon()
	bot := NewBotPlayer(movegen.NewExhaustiveGenerator(lex))
	// "at" and "it" tie; "at" is found first. The "it" left over is then the
	// whole hand and is not searched for.
	turn := game.NewTurn(alphabet.HandFromString("atit"), lex, nil)
	moves, err := PlayTurn(turn, bot)
	is.NoErr(err)
	assert.Equal(t, []string{"at (16)", "(Pass)"}, descriptions(moves))
}

func TestPlayTurnError(t *testing.T) {
	is := is.New(t)
	boom := errors.New("boom")
	turn := game.NewTurn(alphabet.HandFromString("honeyw*"), testhelpers.EnglishLexicon(), nil)
	moves, err := PlayTurn(turn, WordSourceFunc(func(alphabet.Hand) (string, error) {
		return "", boom
	}))
	is.Equal(err, boom)
	is.Equal(len(moves), 0)
	is.True(turn.Active())
}

func TestGameOptionsSet(t *testing.T) {
	is := is.New(t)
	opts := &GameOptions{HandSize: 7, NumHands: 1}
	is.NoErr(opts.Set("handsize", "9"))
	is.NoErr(opts.Set("hands", "3"))
	is.NoErr(opts.Set("wildcard", "true"))
	is.Equal(*opts, GameOptions{HandSize: 9, NumHands: 3, ComputerWildcard: true})
	is.Equal(opts.String(), "handsize: 9 hands: 3 wildcard: true")

	is.True(opts.Set("handsize", "0") != nil)
	is.True(opts.Set("hands", "many") != nil)
	is.True(opts.Set("wildcard", "maybe") != nil)
	is.True(opts.Set("board", "big") != nil)
	is.Equal(opts.HandSize, 9)
}

package turnplayer

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/game"
	"github.com/domino14/wordhand/move"
	"github.com/domino14/wordhand/movegen"
)

// PlayTurn asks src for words until turn is over, and returns the moves
// that were made.
func PlayTurn(turn *game.Turn, src WordSource) ([]*move.Move, error) {
	var moves []*move.Move
	for turn.Active() {
		word, err := src.NextWord(turn.Hand())
		var m *move.Move
		switch {
		case errors.Is(err, ErrPass):
			m, err = turn.Pass()
		case err != nil:
			return moves, err
		default:
			m, err = turn.Submit(word)
		}
		if err != nil {
			return moves, err
		}
		moves = append(moves, m)
	}
	log.Debug().Int("moves", len(moves)).Int("score", turn.Score()).
		Str("state", turn.State().String()).Msg("turn-played")
	return moves, nil
}

// BotPlayer plays the best word it can find each time.
type BotPlayer struct {
	gen movegen.MoveGenerator
}

func NewBotPlayer(gen movegen.MoveGenerator) *BotPlayer {
	return &BotPlayer{gen: gen}
}

func (b *BotPlayer) NextWord(hand alphabet.Hand) (string, error) {
	best := b.gen.BestPlay(hand, hand.Size())
	if best.Action() != move.MoveTypePlay {
		return "", ErrPass
	}
	return best.Word(), nil
}

// ScriptedPlayer plays a fixed list of words, then stops.
type ScriptedPlayer struct {
	words []string
	next  int
}

func NewScriptedPlayer(words ...string) *ScriptedPlayer {
	return &ScriptedPlayer{words: words}
}

func (s *ScriptedPlayer) NextWord(alphabet.Hand) (string, error) {
	if s.next >= len(s.words) {
		return game.StopSignal, nil
	}
	w := s.words[s.next]
	s.next++
	return w, nil
}

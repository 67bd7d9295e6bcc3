package movegen

import (
	"github.com/domino14/wordhand/move"
)

// PlayRecorderFunc is called by GenAll for every play the hand can make.
type PlayRecorderFunc func(gen *ExhaustiveGenerator, word string, score int)

func NullPlayRecorder(gen *ExhaustiveGenerator, word string, score int) {
}

// AllPlaysRecorder keeps every play, in the order generated.
func AllPlaysRecorder(gen *ExhaustiveGenerator, word string, score int) {
	m := move.NewScoringMove(word, gen.handSize, score)
	gen.plays = append(gen.plays, m)
	if gen.winner == nil || score > gen.winner.Score() {
		gen.winner = m
	}
}

// TopPlayOnlyRecorder keeps a single play: the first one found with the
// highest score.
func TopPlayOnlyRecorder(gen *ExhaustiveGenerator, word string, score int) {
	if gen.winner != nil && score <= gen.winner.Score() {
		return
	}
	gen.winner = move.NewScoringMove(word, gen.handSize, score)
	if len(gen.plays) == 0 {
		gen.plays = append(gen.plays, gen.winner)
	} else {
		gen.plays[0] = gen.winner
	}
}

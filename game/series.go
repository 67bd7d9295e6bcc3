package game

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/lexicon"
)

// Series deals a fixed number of hands and keeps the human and computer
// totals across them.
type Series struct {
	lex      lexicon.Lexicon
	rng      alphabet.Randomizer
	numHands int
	handSize int
	hands    []*HandRecord
}

func NewSeries(lex lexicon.Lexicon, numHands, handSize int, rng alphabet.Randomizer) (*Series, error) {
	if numHands < 1 {
		return nil, ErrInvalidNumHands
	}
	if handSize < 1 {
		return nil, alphabet.ErrInvalidHandSize
	}
	if rng == nil {
		rng = alphabet.DefaultRandomizer()
	}
	return &Series{lex: lex, rng: rng, numHands: numHands, handSize: handSize}, nil
}

// NextHand deals the next hand. The hand before it must not have a turn in
// progress.
func (s *Series) NextHand() (*HandRecord, error) {
	if cur := s.Current(); cur != nil && cur.inProgress() {
		return nil, ErrTurnInProgress
	}
	if len(s.hands) >= s.numHands {
		return nil, ErrSeriesOver
	}
	hand, err := alphabet.Deal(s.handSize, s.rng)
	if err != nil {
		return nil, err
	}
	rec := NewHandRecord(hand, s.lex)
	s.hands = append(s.hands, rec)
	log.Debug().Int("hand-number", len(s.hands)).Str("hand", hand.String()).Msg("dealt")
	return rec, nil
}

// Current is the hand dealt last, or nil before the first deal.
func (s *Series) Current() *HandRecord {
	if len(s.hands) == 0 {
		return nil
	}
	return s.hands[len(s.hands)-1]
}

// Randomizer is the source used for dealing, and for substitutions.
func (s *Series) Randomizer() alphabet.Randomizer {
	return s.rng
}

func (s *Series) Hands() []*HandRecord {
	return s.hands
}

func (s *Series) NumHands() int {
	return s.numHands
}

func (s *Series) HandSize() int {
	return s.handSize
}

// Over is true once every hand has been dealt and none is still in play.
func (s *Series) Over() bool {
	return len(s.hands) == s.numHands && !s.Current().inProgress()
}

func (s *Series) HumanTotal() int {
	return lo.SumBy(s.hands, (*HandRecord).Score)
}

func (s *Series) ComputerTotal() int {
	return lo.SumBy(s.hands, (*HandRecord).ComputerScore)
}

type HandSummary struct {
	Dealt         string   `yaml:"dealt"`
	Substituted   string   `yaml:"substituted,omitempty"`
	Attempts      []int    `yaml:"attempts,flow"`
	Score         int      `yaml:"score"`
	ComputerWords []string `yaml:"computer_words,omitempty,flow"`
	ComputerScore int      `yaml:"computer_score"`
}

// Summary is the series as it stands, for display.
type Summary struct {
	Lexicon       string        `yaml:"lexicon"`
	NumHands      int           `yaml:"num_hands"`
	HandSize      int           `yaml:"hand_size"`
	Hands         []HandSummary `yaml:"hands"`
	HumanTotal    int           `yaml:"human_total"`
	ComputerTotal int           `yaml:"computer_total"`
}

func (s *Series) Summary() Summary {
	return Summary{
		Lexicon:  s.lex.Name(),
		NumHands: s.numHands,
		HandSize: s.handSize,
		Hands: lo.Map(s.hands, func(h *HandRecord, _ int) HandSummary {
			hs := HandSummary{
				Dealt:         h.Dealt().String(),
				Attempts:      lo.Map(h.Attempts(), func(t *Turn, _ int) int { return t.Score() }),
				Score:         h.Score(),
				ComputerScore: h.ComputerScore(),
			}
			if h.Substituted() {
				hs.Substituted = h.Start().String()
			}
			if h.Computer() != nil {
				hs.ComputerWords = h.Computer().Words()
			}
			return hs
		}),
		HumanTotal:    s.HumanTotal(),
		ComputerTotal: s.ComputerTotal(),
	}
}

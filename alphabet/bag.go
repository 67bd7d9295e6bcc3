package alphabet

import (
	"encoding/binary"
	"errors"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// ErrInvalidHandSize is returned when asked to deal fewer than one tile.
var ErrInvalidHandSize = errors.New("hand size must be at least 1")

// Randomizer is the source of randomness for dealing and substituting.
// *frand.RNG satisfies it.
type Randomizer interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type frandRandomizer struct{}

func (frandRandomizer) Intn(n int) int {
	return frand.Intn(n)
}

func (frandRandomizer) Shuffle(n int, swap func(i, j int)) {
	frand.Shuffle(n, swap)
}

// DefaultRandomizer draws from frand's global, cryptographically seeded
// generator.
func DefaultRandomizer() Randomizer {
	return frandRandomizer{}
}

// NewSeededRandomizer returns a deterministic generator. The same seed
// always deals the same hands.
func NewSeededRandomizer(seed uint64) Randomizer {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return frand.NewCustom(s[:], 1024, 12)
}

// NumVowels returns how many vowels (not counting the wildcard) a hand of
// the given size is dealt: ceil(size/3) - 1.
func NumVowels(size int) int {
	return max(0, (size+2)/3-1)
}

// Deal returns a random hand of size tiles. ceil(size/3) - 1 tiles are
// vowels and the rest of the letters are consonants, each drawn uniformly
// and independently, so repeats are expected. The last tile is always the
// wildcard.
func Deal(size int, rng Randomizer) (Hand, error) {
	if size < 1 {
		return Hand{}, ErrInvalidHandSize
	}
	if rng == nil {
		rng = DefaultRandomizer()
	}
	numVowels := NumVowels(size)
	h := Hand{}
	for range numVowels {
		h.add(rune(Vowels[rng.Intn(len(Vowels))]), 1)
	}
	for range size - 1 - numVowels {
		h.add(rune(Consonants[rng.Intn(len(Consonants))]), 1)
	}
	h.add(Wildcard, 1)
	if e := log.Debug(); e.Enabled() {
		e.Int("size", size).Str("hand", h.String()).Msg("dealt-hand")
	}
	return h, nil
}

// shuffledRunes returns the runes of s in a random order.
func shuffledRunes(s string, rng Randomizer) []rune {
	if rng == nil {
		rng = DefaultRandomizer()
	}
	rs := []rune(s)
	rng.Shuffle(len(rs), func(i, j int) {
		rs[i], rs[j] = rs[j], rs[i]
	})
	return rs
}

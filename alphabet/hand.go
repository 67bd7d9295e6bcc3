package alphabet

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/avast/retry-go/v4"
	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var (
	// ErrAlphabetExhausted is returned by Substitute when every letter of the
	// alphabet is already in the hand.
	ErrAlphabetExhausted = errors.New("no unused letter left to substitute")
	// ErrNotALetter is returned by Substitute for the wildcard or any other
	// tile that is not a letter.
	ErrNotALetter = errors.New("only a letter can be substituted")

	errLetterInHand = errors.New("candidate letter is already in the hand")
)

// Hand is a player's multiset of tiles. Keys keep the order in which they
// were first added; a key may remain with a count of zero after its tiles
// are used up, and such an entry is equivalent to an absent one.
//
// A Hand is a value: none of its methods modify the receiver, they all
// return a new Hand.
type Hand struct {
	order  []rune
	counts map[rune]int
}

// HandFromString creates a hand holding every tile in tiles, in order of
// first appearance. Letters are lowercased.
func HandFromString(tiles string) Hand {
	h := Hand{}
	for _, r := range strings.ToLower(tiles) {
		h.add(r, 1)
	}
	return h
}

// HandFromCounts creates a hand from a tile -> count map. Keys are ordered
// by code point so the result is deterministic. Negative counts become 0.
func HandFromCounts(counts map[rune]int) Hand {
	keys := lo.Keys(counts)
	slices.Sort(keys)
	h := Hand{}
	for _, k := range keys {
		h.add(unicode.ToLower(k), max(0, counts[k]))
	}
	return h
}

func (h *Hand) add(r rune, n int) {
	if h.counts == nil {
		h.counts = make(map[rune]int)
	}
	if _, ok := h.counts[r]; !ok {
		h.order = append(h.order, r)
	}
	h.counts[r] += n
}

// Copy returns a deep copy of this hand.
func (h Hand) Copy() Hand {
	ret := Hand{
		order:  make([]rune, len(h.order)),
		counts: make(map[rune]int, len(h.counts)),
	}
	copy(ret.order, h.order)
	maps.Copy(ret.counts, h.counts)
	return ret
}

// Count returns how many tiles of r are in the hand.
func (h Hand) Count(r rune) int {
	return h.counts[r]
}

// Has returns true if at least one tile of r is in the hand.
func (h Hand) Has(r rune) bool {
	return h.counts[r] > 0
}

// Size is the total number of tiles left in the hand.
func (h Hand) Size() int {
	return lo.Sum(lo.Values(h.counts))
}

// Letters returns the distinct tiles with a non-zero count, in hand order.
func (h Hand) Letters() []rune {
	return lo.Filter(h.order, func(r rune, _ int) bool {
		return h.counts[r] > 0
	})
}

// Tiles returns every tile in the hand, repeated by count, in hand order.
func (h Hand) Tiles() []rune {
	tiles := make([]rune, 0, h.Size())
	for _, r := range h.order {
		for range h.counts[r] {
			tiles = append(tiles, r)
		}
	}
	return tiles
}

// Counts returns a tile -> count map of the non-empty entries.
func (h Hand) Counts() map[rune]int {
	ret := make(map[rune]int)
	for _, r := range h.Letters() {
		ret[r] = h.counts[r]
	}
	return ret
}

// Equal compares two hands by their tile counts. Order does not matter,
// and a zero-count entry equals a missing one.
func (h Hand) Equal(o Hand) bool {
	return maps.Equal(h.Counts(), o.Counts())
}

// String returns the hand in a user-visible form, e.g. "a e e n * ".
func (h Hand) String() string {
	var sb strings.Builder
	for _, t := range h.Tiles() {
		sb.WriteRune(t)
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Hashable returns a canonical, order-independent representation of the
// hand: its tiles sorted by code point.
func (h Hand) Hashable() string {
	tiles := h.Tiles()
	slices.Sort(tiles)
	return string(tiles)
}

// Hash returns a 64-bit hash of the hand's canonical form.
func (h Hand) Hash() uint64 {
	return xxhash.Sum64String(h.Hashable())
}

// Update uses up the letters of word and returns the resulting hand. It
// does not check that the hand can actually supply word: letters that are
// not in the hand are ignored, and no count goes below zero.
func (h Hand) Update(word string) Hand {
	ret := h.Copy()
	for _, r := range strings.ToLower(word) {
		if ret.counts[r] > 0 {
			ret.counts[r]--
		}
	}
	return ret
}

// Substitute replaces every tile equal to letter with a single new letter
// that is not already in the hand; the new letter takes the old one's place
// and count. If letter is not in the hand the hand is returned unchanged.
// Candidates are tried in a random order, at most once each; if every
// letter collides the hand is returned unchanged with ErrAlphabetExhausted.
// The wildcard cannot be substituted.
func (h Hand) Substitute(letter rune, rng Randomizer) (Hand, error) {
	letter = unicode.ToLower(letter)
	if !IsLetter(letter) {
		return h.Copy(), ErrNotALetter
	}
	if !h.Has(letter) {
		return h.Copy(), nil
	}
	candidates := shuffledRunes(Letters, rng)
	attempt := 0
	replacement, err := retry.DoWithData(
		func() (rune, error) {
			c := candidates[attempt]
			attempt++
			if h.Has(c) {
				return 0, errLetterInHand
			}
			return c, nil
		},
		retry.Attempts(uint(len(candidates))),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Debug().Str("hand", h.Hashable()).Int("attempts", attempt).
			Msg("substitute-alphabet-exhausted")
		return h.Copy(), ErrAlphabetExhausted
	}

	ret := Hand{}
	for _, r := range h.order {
		switch r {
		case letter:
			ret.add(replacement, h.counts[letter])
		case replacement:
			// a leftover zero-count key; the replacement takes letter's slot.
		default:
			ret.add(r, h.counts[r])
		}
	}
	log.Debug().Str("old", string(letter)).Str("new", string(replacement)).
		Int("attempts", attempt).Msg("substituted")
	return ret, nil
}

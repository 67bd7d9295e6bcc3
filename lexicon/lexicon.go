// Package lexicon holds the word index that validation and move generation
// look words up in.
package lexicon

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Lexicon is the read-only dictionary contract.
type Lexicon interface {
	Name() string
	// HasWord looks word up within its own length bucket.
	HasWord(word string) bool
	// WordsOfLength enumerates the words of length n in source order. The
	// sequence can be ranged over any number of times.
	WordsOfLength(n int) iter.Seq[string]
	// Lengths returns every word length that has at least one word, in
	// ascending order.
	Lengths() []int
}

// Option configures a WordIndex at construction time.
type Option func(*WordIndex)

// KeyByInitial keys membership buckets by (length, first letter) rather
// than by length alone. Enumeration order is not affected.
func KeyByInitial() Option {
	return func(w *WordIndex) {
		w.byInitial = true
	}
}

type bucketKey struct {
	length  int
	initial rune
}

// WordIndex is a length-bucketed word list. It is immutable once built.
type WordIndex struct {
	name      string
	byInitial bool
	numWords  int
	// buckets keeps every word of a length in the order it was read in.
	buckets map[int][]string
	members map[bucketKey]map[string]struct{}
}

func newWordIndex(name string, opts ...Option) *WordIndex {
	w := &WordIndex{
		name:    name,
		buckets: make(map[int][]string),
		members: make(map[bucketKey]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// FromWords builds an index from a list of words. Words are trimmed and
// lowercased; blanks and duplicates are dropped.
func FromWords(name string, words []string, opts ...Option) *WordIndex {
	w := newWordIndex(name, opts...)
	for _, word := range words {
		w.insert(strings.ToLower(strings.TrimSpace(word)))
	}
	return w
}

func (w *WordIndex) key(word string) bucketKey {
	k := bucketKey{length: utf8.RuneCountInString(word)}
	if w.byInitial {
		k.initial, _ = utf8.DecodeRuneInString(word)
	}
	return k
}

func (w *WordIndex) insert(word string) {
	if word == "" {
		return
	}
	k := w.key(word)
	set, ok := w.members[k]
	if !ok {
		set = make(map[string]struct{})
		w.members[k] = set
	}
	if _, dupe := set[word]; dupe {
		return
	}
	set[word] = struct{}{}
	w.buckets[k.length] = append(w.buckets[k.length], word)
	w.numWords++
}

func (w *WordIndex) Name() string {
	return w.name
}

// NumWords is the number of distinct words in the index.
func (w *WordIndex) NumWords() int {
	return w.numWords
}

func (w *WordIndex) HasWord(word string) bool {
	_, ok := w.members[w.key(word)][word]
	return ok
}

func (w *WordIndex) WordsOfLength(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, word := range w.buckets[n] {
			if !yield(word) {
				return
			}
		}
	}
}

func (w *WordIndex) Lengths() []int {
	lengths := lo.Keys(w.buckets)
	slices.Sort(lengths)
	return lengths
}

package lexicon

import (
	"fmt"
	"strings"
)

// LexiconInfo summarizes a WordIndex for display.
type LexiconInfo struct {
	LexiconName    string
	NumWords       int
	KeyedByInitial bool
	WordsPerLength map[int]int
}

// Info returns a summary of the index.
func (w *WordIndex) Info() LexiconInfo {
	info := LexiconInfo{
		LexiconName:    w.name,
		NumWords:       w.numWords,
		KeyedByInitial: w.byInitial,
		WordsPerLength: make(map[int]int, len(w.buckets)),
	}
	for length, words := range w.buckets {
		info.WordsPerLength[length] = len(words)
	}
	return info
}

func (l LexiconInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d words", l.LexiconName, l.NumWords)
	if l.KeyedByInitial {
		sb.WriteString(" (keyed by initial)")
	}
	sb.WriteString("\n")
	for length := 1; length <= maxKey(l.WordsPerLength); length++ {
		if ct, ok := l.WordsPerLength[length]; ok {
			fmt.Fprintf(&sb, "%3d letters: %d\n", length, ct)
		}
	}
	return sb.String()
}

func maxKey(m map[int]int) int {
	mx := 0
	for k := range m {
		mx = max(mx, k)
	}
	return mx
}

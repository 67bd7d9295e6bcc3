package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/domino14/wordhand/cache"
)

// Load reads a dictionary file. Files ending in .json are read as length
// buckets (see LoadJSON); anything else as a word list (see LoadWordList).
// The lexicon is named after the file, without its extension.
func Load(path string, opts ...Option) (*WordIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DictionaryFormatError{Source: path, Err: err}
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f, name, opts...)
	}
	return LoadWordList(f, name, opts...)
}

// LoadCached is Load backed by the global object cache: each file is read
// once per process for each indexing mode.
func LoadCached(path string, keyByInitial bool) (*WordIndex, error) {
	key := fmt.Sprintf("lexicon:%v:%v", path, keyByInitial)
	obj, err := cache.Load(key, func(string) (interface{}, error) {
		if keyByInitial {
			return Load(path, KeyByInitial())
		}
		return Load(path)
	})
	if err != nil {
		return nil, err
	}
	return obj.(*WordIndex), nil
}

// LoadJSON reads an object mapping word lengths to word arrays, e.g.
//
//	{"2": ["aa", "ab"], "3": ["aah", "aal"]}
//
// Every word must have the length of its bucket.
func LoadJSON(r io.Reader, name string, opts ...Option) (*WordIndex, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DictionaryFormatError{Source: name, Err: err}
	}
	if !gjson.ValidBytes(data) {
		return nil, &DictionaryFormatError{Source: name, Err: ErrInvalidJSON}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &DictionaryFormatError{Source: name, Err: ErrNotAnObject}
	}

	idx := newWordIndex(name, opts...)
	var ferr error
	root.ForEach(func(key, bucket gjson.Result) bool {
		ferr = loadBucket(idx, name, key.String(), bucket)
		return ferr == nil
	})
	if ferr != nil {
		return nil, ferr
	}
	if idx.NumWords() == 0 {
		return nil, &DictionaryFormatError{Source: name, Err: ErrNoBuckets}
	}
	log.Debug().Str("lexicon", name).Int("words", idx.NumWords()).
		Ints("lengths", idx.Lengths()).Msg("loaded-json-lexicon")
	return idx, nil
}

func loadBucket(idx *WordIndex, name, key string, bucket gjson.Result) error {
	length, err := strconv.Atoi(key)
	if err != nil || length < 1 {
		return &DictionaryFormatError{Source: name, Bucket: key, Err: ErrBadBucketKey}
	}
	if !bucket.IsArray() {
		return &DictionaryFormatError{Source: name, Bucket: key, Err: ErrBadBucket}
	}
	var berr error
	bucket.ForEach(func(_, w gjson.Result) bool {
		if w.Type != gjson.String {
			berr = &DictionaryFormatError{Source: name, Bucket: key, Err: ErrBadBucket}
			return false
		}
		word := strings.ToLower(strings.TrimSpace(w.String()))
		if utf8.RuneCountInString(word) != length {
			berr = &DictionaryFormatError{Source: name, Bucket: key,
				Err: fmt.Errorf("%w: %q", ErrLengthMismatch, word)}
			return false
		}
		idx.insert(word)
		return true
	})
	return berr
}

// LoadWordList reads one word per line. Blank lines are skipped.
func LoadWordList(r io.Reader, name string, opts ...Option) (*WordIndex, error) {
	idx := newWordIndex(name, opts...)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		idx.insert(strings.ToLower(strings.TrimSpace(scanner.Text())))
	}
	if err := scanner.Err(); err != nil {
		return nil, &DictionaryFormatError{Source: name, Err: err}
	}
	if idx.NumWords() == 0 {
		return nil, &DictionaryFormatError{Source: name, Err: ErrNoBuckets}
	}
	log.Debug().Str("lexicon", name).Int("words", idx.NumWords()).
		Msg("loaded-wordlist-lexicon")
	return idx, nil
}

package lexicon

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON    = errors.New("not valid JSON")
	ErrNotAnObject    = errors.New("top level must be an object of length buckets")
	ErrBadBucketKey   = errors.New("bucket key is not a positive word length")
	ErrBadBucket      = errors.New("bucket must be an array of strings")
	ErrLengthMismatch = errors.New("word length does not match its bucket")
	ErrNoBuckets      = errors.New("no words found")
)

// DictionaryFormatError is returned when dictionary data cannot be turned
// into a WordIndex. It is not recoverable; no partial index is returned.
type DictionaryFormatError struct {
	Source string
	// Bucket is the offending length bucket, if any.
	Bucket string
	Err    error
}

func (e *DictionaryFormatError) Error() string {
	if e.Bucket != "" {
		return fmt.Sprintf("dictionary %s: bucket %q: %v", e.Source, e.Bucket, e.Err)
	}
	return fmt.Sprintf("dictionary %s: %v", e.Source, e.Err)
}

func (e *DictionaryFormatError) Unwrap() error {
	return e.Err
}

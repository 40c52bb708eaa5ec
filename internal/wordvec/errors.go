package wordvec

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidSize       = errors.New("invalid vocabulary size or dimension")
	ErrMalformedLine     = errors.New("malformed word vector line")
	ErrVocabSizeMismatch = errors.New("vocabulary size mismatch")
	ErrInvalidHeader     = errors.New("invalid word vector header")
	ErrInvalidExport     = errors.New("invalid embedding export")
)

// ParseError reports a line that could not be turned into a vector.
type ParseError struct {
	Line  int    // 1-based line number in the input
	Field int    // 0-based field index, -1 when the field count is wrong
	Token string // Token of the offending line (may be empty)
	Err   error  // Underlying cause
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("line %d (%q): %v", e.Line, e.Token, e.Err)
	}
	return fmt.Sprintf("line %d (%q): field %d: %v", e.Line, e.Token, e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrMalformedLine.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedLine
}

// SizeMismatchError reports that the table and its mappings disagree with
// the declared vocabulary size after the full scan.
type SizeMismatchError struct {
	Declared int // Declared non-reserved vocabulary size
	Lines    int // Data lines actually read
	Indices  int // Entries in the index -> token mapping
	Tokens   int // Entries in the token -> index mapping plus shadowed duplicates
}

// Error implements the error interface.
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%v: declared %d tokens, file has %d (index entries %d, token entries %d)",
		ErrVocabSizeMismatch, e.Declared, e.Lines, e.Indices, e.Tokens)
}

// Unwrap returns ErrVocabSizeMismatch.
func (e *SizeMismatchError) Unwrap() error {
	return ErrVocabSizeMismatch
}

// HeaderError reports a "count dim" header that is missing or disagrees with
// the requested sizes.
type HeaderError struct {
	Line      string
	Count     int
	Dimension int
	Details   string
}

// Error implements the error interface.
func (e *HeaderError) Error() string {
	return fmt.Sprintf("%v: %q: %s", ErrInvalidHeader, e.Line, e.Details)
}

// Unwrap returns ErrInvalidHeader.
func (e *HeaderError) Unwrap() error {
	return ErrInvalidHeader
}

package generator

import (
	"errors"
	"fmt"
)

// Generation errors. Every error returned by Generate wraps exactly one of these.
var (
	ErrMissingTemplateKind = errors.New("missing template kind")
	ErrMissingPlaceholder  = errors.New("missing placeholder")
	ErrIOFailure           = errors.New("io failure")
)

// EntryError identifies the catalog entry that stopped a run.
// Index is -1 when the output directory itself could not be prepared.
type EntryError struct {
	Index int
	File  string
	Kind  string
	Err   error
}

func (e *EntryError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("prepare output directory: %v", e.Err)
	}
	return fmt.Sprintf("contract %s (kind %s, entry %d): %v", e.File, e.Kind, e.Index+1, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *EntryError) Unwrap() error {
	return e.Err
}

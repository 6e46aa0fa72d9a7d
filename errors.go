package filez

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNotFound is returned (wrapped in a *ReadError) when a file does not exist.
	//
	// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
	// The default maps to `os.ErrNotExist`.
	ErrNotFound = os.ErrNotExist

	// ErrPathEscapesRoot is returned (wrapped) when a path resolves outside
	// the bound root, e.g. via "..", an absolute path, or a volume name.
	ErrPathEscapesRoot = errors.New("path escapes root")

	// ErrInvalidUTF8 is returned (wrapped in a *ReadError) when file contents
	// cannot be decoded as UTF-8 text.
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8 text")
)

// ReadError indicates that a file could not be read.
//
// The underlying cause can be accessed via errors.Unwrap.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError indicates that a file could not be written.
//
// The underlying cause can be accessed via errors.Unwrap.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error writing %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ListErrorKind is the closed set of ways a list operation can fail.
type ListErrorKind uint8

const (
	// ListErrorUnknown is the zero value; it is never produced.
	ListErrorUnknown ListErrorKind = iota
	// ListErrorInvalidPattern indicates the glob pattern could not be parsed.
	// Callers should treat this as a programming error.
	ListErrorInvalidPattern
	// ListErrorIO indicates traversal hit an unreadable directory or a
	// backend request failed. Callers may treat this as transient.
	ListErrorIO
)

func (k ListErrorKind) String() string {
	switch k {
	case ListErrorInvalidPattern:
		return "invalid pattern"
	case ListErrorIO:
		return "io failure"
	default:
		return "unknown"
	}
}

// ListError indicates that a glob listing failed.
//
// Kind distinguishes a malformed pattern from an I/O failure so callers can
// react differently. The underlying cause can be accessed via errors.Unwrap.
type ListError struct {
	Pattern string
	Kind    ListErrorKind
	Err     error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("error listing %q (%s): %v", e.Pattern, e.Kind, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

func newReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Err: err}
}

func newWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}

func newListError(pattern string, kind ListErrorKind, err error) *ListError {
	return &ListError{Pattern: pattern, Kind: kind, Err: err}
}

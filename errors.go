package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind tags the component boundary an error crossed
type ErrorKind int

const (
	ErrUnknown     ErrorKind = iota
	ErrArchiveOpen           // container unreadable or not an archive; fatal at startup
	ErrPageDecode            // one entry is not a decodable image; the slot degrades
	ErrFontLoad              // font cannot be loaded; fatal at startup
	ErrInputParse            // page prompt text is not a number; ignored
)

func (k ErrorKind) String() string {
	switch k {
	case ErrArchiveOpen:
		return "archive open"
	case ErrPageDecode:
		return "page decode"
	case ErrFontLoad:
		return "font load"
	case ErrInputParse:
		return "input parse"
	default:
		return "unknown"
	}
}

// ViewerError carries the error kind and the name of the thing that failed
// (archive path, entry name, font path or the rejected input).
type ViewerError struct {
	Kind ErrorKind
	Name string
	Err  error
}

func (e *ViewerError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Name, e.Err)
}

func (e *ViewerError) Unwrap() error {
	return e.Err
}

func newViewerError(kind ErrorKind, name string, err error) *ViewerError {
	return &ViewerError{Kind: kind, Name: name, Err: err}
}

// KindOf returns the kind of the first ViewerError in err's chain
func KindOf(err error) ErrorKind {
	var ve *ViewerError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ErrUnknown
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

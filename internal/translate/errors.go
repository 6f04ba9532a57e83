package translate

import (
	"errors"
	"fmt"
)

// Kind classifies a translation failure. Each failed target language in
// a fan-out degrades to a placeholder segment chosen by kind.
type Kind string

const (
	KindTimeout Kind = "timeout"
	KindHTTP    Kind = "http"
	KindParse   Kind = "parse"
)

// Error is a classified translation failure.
type Error struct {
	Kind   Kind
	Status int // HTTP status for KindHTTP, zero otherwise
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == KindHTTP && e.Status != 0 {
		return fmt.Sprintf("translate: %s (status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("translate: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the failure kind of err, or KindParse if err is not a
// *Error from this package.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindParse
}

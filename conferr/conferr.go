// Package conferr defines the error values raised by the settings and
// collection accessors. Every failure is classified by Kind so callers can
// branch on what went wrong without matching message text.
package conferr

import (
	"errors"
	"fmt"
)

// Kind classifies configuration errors into high-level buckets.
type Kind int

const (
	KindMissing Kind = iota // required key absent or value empty, no default available
	KindParse               // value present but not convertible to the requested type
	KindInvalid             // validation failure: missing required name, non-numeric or out-of-range value
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing value"
	case KindParse:
		return "parse error"
	case KindInvalid:
		return "invalid value"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching on kind alone.
var (
	ErrMissing = errors.New("configuration value missing")
	ErrParse   = errors.New("configuration value not parseable")
	ErrInvalid = errors.New("configuration value invalid")
)

// Error is a classified configuration error. It can wrap an underlying
// cause, typically a strconv or time parse failure.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Kind returns the error classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Is matches the kind sentinels, so errors.Is(err, conferr.ErrParse)
// reports whether err is a parse-kind configuration error.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrMissing:
		return e.kind == KindMissing
	case ErrParse:
		return e.kind == KindParse
	case ErrInvalid:
		return e.kind == KindInvalid
	default:
		return false
	}
}

func newError(kind Kind, cause error, format string, args ...any) error {
	return &Error{kind: kind, err: cause, msg: fmt.Sprintf(format, args...)}
}

// Missing creates a missing-value error.
func Missing(format string, args ...any) error {
	return newError(KindMissing, nil, format, args...)
}

// Parse creates a parse error.
func Parse(format string, args ...any) error {
	return newError(KindParse, nil, format, args...)
}

// ParseWrap creates a parse error wrapping the parser's own failure.
func ParseWrap(cause error, format string, args ...any) error {
	return newError(KindParse, cause, format, args...)
}

// Invalid creates a validation error.
func Invalid(format string, args ...any) error {
	return newError(KindInvalid, nil, format, args...)
}

// KindOf extracts the Kind from err. The second return is false when err
// is not a classified configuration error.
func KindOf(err error) (Kind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.kind, true
	}
	return 0, false
}

package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for callers that present it to a user.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindNotFound
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error attaches a Kind to an underlying error. errors.Is still sees the wrapped error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// InvalidArgument marks err as caused by caller-supplied data.
func InvalidArgument(err error) error { return &Error{Kind: KindInvalidArgument, Err: err} }

// NotFound marks err as a reference that did not resolve.
func NotFound(err error) error { return &Error{Kind: KindNotFound, Err: err} }

// Unavailable marks err as a network or store failure.
func Unavailable(err error) error { return &Error{Kind: KindUnavailable, Err: err} }

// Unavailablef wraps err with a message and marks it Unavailable.
func Unavailablef(err error, format string, args ...any) error {
	return Unavailable(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err))
}

// KindOf returns the outermost Kind found in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsInvalidArgument reports whether err is of KindInvalidArgument.
func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }

// IsNotFound reports whether err is of KindNotFound.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsUnavailable reports whether err is of KindUnavailable.
func IsUnavailable(err error) bool { return KindOf(err) == KindUnavailable }

package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the status code the delivery layer should answer with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError builds an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// FromKind maps a classified error to an HTTPError. Unclassified errors become 500.
func FromKind(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch KindOf(err) {
	case KindInvalidArgument:
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error())
	case KindUnavailable:
		return NewHTTPError(http.StatusServiceUnavailable, "service temporarily unavailable, please retry")
	default:
		return ErrInternalServerError
	}
}

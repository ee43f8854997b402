package check

import "fmt"

// TransportError reports a failed network exchange: connection failure,
// timeout, or a non-2xx HTTP status.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// Transportf wraps a formatted error as a TransportError.
func Transportf(format string, args ...any) error {
	return &TransportError{Err: fmt.Errorf(format, args...)}
}

// ParseError reports a response body with a malformed or unexpected shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// Parsef wraps a formatted error as a ParseError.
func Parsef(format string, args ...any) error {
	return &ParseError{Err: fmt.Errorf(format, args...)}
}

// UsageError reports a missing or invalid required argument.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

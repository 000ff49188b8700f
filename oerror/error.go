package oerror

import "fmt"

// OomphError is the error type returned by pathrec packages. Sentinel errors are
// wrapped so callers can match them with errors.Is.
type OomphError struct {
	Err string

	wrapped error
}

// New returns a new OomphError with a message formatted from the arguments passed.
func New(format string, args ...any) *OomphError {
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

// Wrap returns a new OomphError that wraps err, prefixing its message with the
// formatted context.
func Wrap(err error, format string, args ...any) *OomphError {
	return &OomphError{
		Err:     fmt.Sprintf(format, args...) + ": " + err.Error(),
		wrapped: err,
	}
}

func (e *OomphError) Error() string {
	return e.Err
}

func (e *OomphError) Unwrap() error {
	return e.wrapped
}

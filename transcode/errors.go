package transcode

import (
	"errors"
	"fmt"
)

// EncodingError reports a payload that could not be encoded, it is never retryable
type EncodingError struct {
	Field string
	Err   error
}

// Error implements error
func (e *EncodingError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("encoding error: %v", e.Err)
	}
	return fmt.Sprintf("encoding error: field %v: %v", e.Field, e.Err)
}

// Unwrap returns underlying error
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Retryable returns false, the same payload would fail again
func (e *EncodingError) Retryable() bool {
	return false
}

// IsEncodingError returns true if err chain contains *EncodingError
func IsEncodingError(err error) bool {
	var encErr *EncodingError
	return errors.As(err, &encErr)
}

func newEncodingError(field string, err error) *EncodingError {
	return &EncodingError{Field: field, Err: err}
}

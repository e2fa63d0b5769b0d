package query

import (
	"errors"
	"fmt"
)

// ValidationError reports an invalid query parameter. It is always
// recoverable; the HTTP boundary maps it to a 400 response with the
// message intact.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package domain

import "errors"

// Domain errors.
var (
	ErrKeyNotFound         = errors.New("translation key not found")
	ErrTranslationNotFound = errors.New("translation not found")
	ErrDatabaseUnavailable = errors.New("database connection not available")
)

// ValidationError reports a request rejected before any datastore call
// (missing field, out-of-range parameter, empty bulk payload).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidTime        = errors.New("invalid time")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrDuplicateSlug      = errors.New("slug already in use")
	ErrDanglingReference  = errors.New("referenced event does not exist")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MissingFieldError reports a required event field that is absent or empty
// after trimming. Field holds the JSON name of the offending attribute.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IsMissingField reports whether err is a MissingFieldError, returning the
// field name when it is.
func IsMissingField(err error) (string, bool) {
	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return mf.Field, true
	}
	return "", false
}

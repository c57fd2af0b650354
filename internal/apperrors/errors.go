package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrMalformedCSV indicates a structural CSV problem detected before row validation.
var ErrMalformedCSV = errors.New("malformed CSV")

// ErrProfileNotFound indicates that a credential was accepted but no user profile exists for it.
// This is a configuration problem on the operator side, not a bad password.
var ErrProfileNotFound = errors.New("user profile not found")

// ErrTokenRevoked indicates that a session token was signed out.
var ErrTokenRevoked = errors.New("token has been revoked")

// ValidationError carries every human-readable validation message collected for an input.
// errors.Is(err, ErrValidation) reports true for it.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from the collected messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Is lets errors.Is match ValidationError against ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationMessages extracts the message list from err if it is (or wraps) a ValidationError.
func ValidationMessages(err error) []string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Messages
	}
	return nil
}

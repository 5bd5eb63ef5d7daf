package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Handlers map these onto HTTP
// status codes; services and repositories never touch status codes themselves.
var (
	// ErrMissingToken indicates a protected route was called without a bearer token.
	ErrMissingToken = errors.New("token missing")
	// ErrInvalidToken indicates the bearer token failed verification or names an
	// unknown user.
	ErrInvalidToken = errors.New("token invalid")
	// ErrUnauthorized indicates an authenticated identity that does not own the
	// target resource. Mapped to 401, not 403, matching the upstream API contract.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMalformedID indicates a lookup id that cannot be a valid record id.
	ErrMalformedID = errors.New("malformed id")
	// ErrStore indicates an infrastructure fault in the backing store.
	ErrStore = errors.New("store failure")
)

// ValidationError is a user-correctable input error. The message text is part
// of the API contract: clients assert on it to learn which rule failed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreFailure wraps an infrastructure fault so errors.Is(err, ErrStore) holds
// while the underlying cause stays available for logging.
func StoreFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}

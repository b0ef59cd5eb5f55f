package service

import "errors"

var (
	// ErrInvalidEmail is returned by SignIn when no account exists for
	// the given email.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPassword is returned by SignIn when the password does not
	// match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrTokenIsExpiredOrInvalid is returned by ParseToken for any token
	// that fails signature, issuer, or expiry checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrSpendingIndexOutOfRange is returned by DeleteSpending when the
	// requested position does not address an existing entry.
	ErrSpendingIndexOutOfRange = errors.New(`"index" is out of range`)
)

// ValidationError wraps a validator failure so transports can distinguish
// malformed input from internal errors while preserving the exact
// user-facing message.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps err as a ValidationError.
func NewValidationError(err error) *ValidationError {
	return &ValidationError{Err: err}
}

package validators

import "errors"

// Sentinel validation errors. Each carries the human-readable message that is
// propagated verbatim to the client (delete-spending excepted, which answers
// with a generic message at the transport layer).
var (
	ErrFirstNameRequired = errors.New(`"firstName" is required`)
	ErrLastNameRequired  = errors.New(`"lastName" is required`)
	ErrEmailRequired     = errors.New(`"email" is required`)
	ErrPasswordRequired  = errors.New(`"password" is required`)

	ErrEmailLength    = errors.New(`"email" length must be between 5 and 255 characters`)
	ErrEmailInvalid   = errors.New(`"email" must be a valid email`)
	ErrPasswordLength = errors.New(`"password" length must be between 5 and 255 characters`)

	ErrDateInvalid          = errors.New(`"date" must be a valid date`)
	ErrBusinessNameRequired = errors.New(`"businessName" is required`)
	ErrCategoryRequired     = errors.New(`"category" is required`)
	ErrAmountPositive       = errors.New(`"amount" must be greater than 0`)

	ErrIndexRequired = errors.New(`"index" is required`)
	ErrIndexInteger  = errors.New(`"index" must be an integer`)

	ErrTypeRequired   = errors.New(`"type" is required`)
	ErrAmountRequired = errors.New(`"amount" is required`)

	// ErrUnsupportedType is returned when Validate receives a payload type
	// it does not know how to check.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

package validators

import (
	"context"
	"math"
	"net/mail"
	"time"

	"spendbook/models"
)

// dateFormats lists the accepted spellings for date fields, tried in order.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a date field accepted by ValidateSpending. It is exported
// so the service layer can reuse the exact same interpretation when building
// the entry that validation approved.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateFormats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// AccountValidator implements [Validator] for every account-facing payload:
// CreateAccountRequest, SignInRequest, AddSpendingRequest,
// DeleteSpendingRequest, and AddBudgetRequest. Both value and pointer forms
// are accepted.
type AccountValidator struct {
}

// NewAccountValidator constructs an AccountValidator and returns it as the
// Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches to the payload-specific check based on the dynamic type
// of obj. Returns ErrUnsupportedType for anything it does not recognize.
func (v *AccountValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.CreateAccountRequest:
		return v.validateCreateAccount(value)
	case *models.CreateAccountRequest:
		return v.validateCreateAccount(*value)

	case models.SignInRequest:
		return v.validateSignIn(value)
	case *models.SignInRequest:
		return v.validateSignIn(*value)

	case models.AddSpendingRequest:
		return v.validateSpending(value)
	case *models.AddSpendingRequest:
		return v.validateSpending(*value)

	case models.DeleteSpendingRequest:
		return v.validateDeleteSpending(value)
	case *models.DeleteSpendingRequest:
		return v.validateDeleteSpending(*value)

	case models.AddBudgetRequest:
		return v.validateBudget(value)
	case *models.AddBudgetRequest:
		return v.validateBudget(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateAccount requires all four profile fields to be non-empty.
// Email shape is intentionally not checked here; only sign-in does that.
func (v *AccountValidator) validateCreateAccount(req models.CreateAccountRequest) error {
	if req.FirstName == "" {
		return ErrFirstNameRequired
	}
	if req.LastName == "" {
		return ErrLastNameRequired
	}
	if req.Email == "" {
		return ErrEmailRequired
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}

	return nil
}

func (v *AccountValidator) validateSignIn(req models.SignInRequest) error {
	if req.Email == "" {
		return ErrEmailRequired
	}
	if len(req.Email) < 5 || len(req.Email) > 255 {
		return ErrEmailLength
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return ErrEmailInvalid
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}
	if len(req.Password) < 5 || len(req.Password) > 255 {
		return ErrPasswordLength
	}

	return nil
}

func (v *AccountValidator) validateSpending(req models.AddSpendingRequest) error {
	if _, err := ParseDate(req.Date); err != nil {
		return ErrDateInvalid
	}
	if req.BusinessName == "" {
		return ErrBusinessNameRequired
	}
	if req.Category == "" {
		return ErrCategoryRequired
	}
	if req.Amount <= 0 {
		return ErrAmountPositive
	}

	return nil
}

// validateDeleteSpending requires an integral index. Bounds are checked by
// the service against the loaded user, not here.
func (v *AccountValidator) validateDeleteSpending(req models.DeleteSpendingRequest) error {
	if req.Index == nil {
		return ErrIndexRequired
	}
	if *req.Index != math.Trunc(*req.Index) {
		return ErrIndexInteger
	}

	return nil
}

func (v *AccountValidator) validateBudget(req models.AddBudgetRequest) error {
	if req.Type == "" {
		return ErrTypeRequired
	}
	if req.Amount == nil {
		return ErrAmountRequired
	}
	if req.Date != "" {
		if _, err := ParseDate(req.Date); err != nil {
			return ErrDateInvalid
		}
	}

	return nil
}

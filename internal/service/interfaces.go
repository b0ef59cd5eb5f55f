// Package service contains the business logic of spendbook: account
// registration, sign-in, token lifecycle, and the spending/budget ledger
// operations. Handlers talk to services, services talk to the store.
package service

import (
	"context"

	"spendbook/models"
)

// AccountService manages user accounts and their financial records.
type AccountService interface {
	// CreateAccount registers a new user and returns the stored user
	// together with a freshly issued auth token.
	CreateAccount(ctx context.Context, request models.CreateAccountRequest) (models.User, models.Token, error)

	// SignIn verifies the credentials and returns the user with a fresh
	// auth token.
	SignIn(ctx context.Context, request models.SignInRequest) (models.User, models.Token, error)

	// AddSpending appends a spending entry to the user's ledger and
	// returns the updated, newest-first ordered spending list.
	AddSpending(ctx context.Context, userID string, request models.AddSpendingRequest) ([]models.SpendingEntry, error)

	// DeleteSpending removes the spending entry at the given position in
	// the newest-first ordering and returns the updated list.
	DeleteSpending(ctx context.Context, userID string, request models.DeleteSpendingRequest) ([]models.SpendingEntry, error)

	// AddBudget appends a budget entry to the user's records and returns
	// the updated budget list in insertion order.
	AddBudget(ctx context.Context, userID string, request models.AddBudgetRequest) ([]models.BudgetEntry, error)

	// ParseToken validates a signed token string and returns the parsed
	// token with its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build and version information about the running
// application.
type AppInfoService interface {
	Version(ctx context.Context) string
}

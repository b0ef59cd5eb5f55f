// Package adapter provides a typed client for the spendbook HTTP API, built
// on resty. It is the programmatic counterpart of the transport layer and is
// exercised end-to-end by the integration tests.
package adapter

import (
	"context"

	"spendbook/models"
)

// Client is the programmatic interface to the spendbook API. Implementations
// keep the bearer token between calls: CreateAccount and SignIn capture it,
// the ledger operations send it.
type Client interface {
	CreateAccount(ctx context.Context, request models.CreateAccountRequest) error
	SignIn(ctx context.Context, request models.SignInRequest) (models.SignInResponse, error)
	AddSpending(ctx context.Context, request models.AddSpendingRequest) ([]models.SpendingEntry, error)
	DeleteSpending(ctx context.Context, request models.DeleteSpendingRequest) ([]models.SpendingEntry, error)
	AddBudget(ctx context.Context, request models.AddBudgetRequest) ([]models.BudgetEntry, error)

	// SetToken overrides the stored bearer token.
	SetToken(token string)
	// Token returns the currently stored bearer token.
	Token() string
}

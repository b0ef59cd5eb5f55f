package store

import (
	"context"

	"spendbook/models"
)

// UserRepository is the data-access contract for user documents. Embedded
// spending/budget collections are read and written as part of the owning
// user row; the Update methods are conditional on the user's Version field.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateSpending persists user.Spending if the stored row still has
	// user.Version; on success the returned user carries the incremented
	// version. Fails with ErrVersionConflict otherwise.
	UpdateSpending(ctx context.Context, user models.User) (models.User, error)

	// UpdateBudget is the budget-collection counterpart of UpdateSpending.
	UpdateBudget(ctx context.Context, user models.User) (models.User, error)
}

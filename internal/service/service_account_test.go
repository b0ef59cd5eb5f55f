package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"spendbook/internal/config"
	"spendbook/internal/logger"
	"spendbook/internal/mock"
	"spendbook/internal/store"
	"spendbook/internal/utils"
	"spendbook/internal/validators"
	"spendbook/models"
)

var testAppCfg = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "spendbook-test",
	TokenDuration: time.Hour,
}

func newTestAccountService(t *testing.T) (AccountService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewAccountService(users, validators.NewAccountValidator(), testAppCfg, logger.Nop())

	return svc, users
}

func float64Ptr(v float64) *float64 { return &v }

func TestAccountService_CreateAccount(t *testing.T) {
	request := models.CreateAccountRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
	}

	t.Run("success", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, request.Email, user.Email)
				assert.NotEqual(t, request.Password, user.PasswordHash)
				assert.NoError(t, utils.CheckPassword(user.PasswordHash, request.Password))
				assert.Empty(t, user.Spending)
				assert.Empty(t, user.Budget)
				assert.EqualValues(t, 1, user.Version)
				return user, nil
			})

		created, token, err := svc.CreateAccount(context.Background(), request)
		require.NoError(t, err)
		assert.NotEmpty(t, token.SignedString)

		parsed, err := svc.ParseToken(context.Background(), token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, created.ID, parsed.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, store.ErrEmailAlreadyExists)

		_, _, err := svc.CreateAccount(context.Background(), request)
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})

	t.Run("validation failure skips the store", func(t *testing.T) {
		svc, _ := newTestAccountService(t)

		incomplete := request
		incomplete.FirstName = ""

		_, _, err := svc.CreateAccount(context.Background(), incomplete)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.ErrorIs(t, err, validators.ErrFirstNameRequired)
	})
}

func TestAccountService_SignIn(t *testing.T) {
	passwordHash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	storedUser := models.User{
		ID:           "user-1",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: passwordHash,
		Spending: []models.SpendingEntry{
			{ID: "old", Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), BusinessName: "Cafe", Amount: 4.5, Category: "food"},
			{ID: "new", Timestamp: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), BusinessName: "Gym", Amount: 30, Category: "sport"},
		},
		Version: 3,
	}

	request := models.SignInRequest{Email: "ada@example.com", Password: "secret123"}

	t.Run("success returns sorted spending and a valid token", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByEmail(gomock.Any(), request.Email).
			Return(storedUser, nil)

		user, token, err := svc.SignIn(context.Background(), request)
		require.NoError(t, err)

		require.Len(t, user.Spending, 2)
		assert.Equal(t, "Gym", user.Spending[0].BusinessName)
		assert.Equal(t, "Cafe", user.Spending[1].BusinessName)

		parsed, err := svc.ParseToken(context.Background(), token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, storedUser.ID, parsed.UserID)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByEmail(gomock.Any(), gomock.Any()).
			Return(models.User{}, store.ErrUserNotFound)

		_, _, err := svc.SignIn(context.Background(), request)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByEmail(gomock.Any(), request.Email).
			Return(storedUser, nil)

		wrong := request
		wrong.Password = "not-the-password"

		_, _, err := svc.SignIn(context.Background(), wrong)
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		svc, _ := newTestAccountService(t)

		_, _, err := svc.SignIn(context.Background(), models.SignInRequest{
			Email:    "definitely-not-an-email",
			Password: "secret123",
		})

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestAccountService_AddSpending(t *testing.T) {
	baseUser := func() models.User {
		return models.User{
			ID:      "user-1",
			Version: 1,
			Spending: []models.SpendingEntry{
				{ID: "cafe", Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), BusinessName: "Cafe", Amount: 4.5, Category: "food"},
			},
			Budget: []models.BudgetEntry{},
		}
	}

	request := models.AddSpendingRequest{
		Date:         "2024-02-01",
		BusinessName: "Gym",
		Category:     "sport",
		Amount:       30,
	}

	t.Run("new entry is inserted newest-first", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByID(gomock.Any(), "user-1").
			Return(baseUser(), nil)
		users.EXPECT().
			UpdateSpending(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
				user.Version++
				return user, nil
			})

		spending, err := svc.AddSpending(context.Background(), "user-1", request)
		require.NoError(t, err)

		require.Len(t, spending, 2)
		assert.Equal(t, "Gym", spending[0].BusinessName)
		assert.Equal(t, "Cafe", spending[1].BusinessName)
		assert.NotEmpty(t, spending[0].ID)
	})

	t.Run("version conflict is retried", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByID(gomock.Any(), "user-1").
			Return(baseUser(), nil).
			Times(2)

		gomock.InOrder(
			users.EXPECT().
				UpdateSpending(gomock.Any(), gomock.Any()).
				Return(models.User{}, store.ErrVersionConflict),
			users.EXPECT().
				UpdateSpending(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
					user.Version++
					return user, nil
				}),
		)

		spending, err := svc.AddSpending(context.Background(), "user-1", request)
		require.NoError(t, err)
		assert.Len(t, spending, 2)
	})

	t.Run("persistent conflict gives up", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByID(gomock.Any(), "user-1").
			Return(baseUser(), nil).
			Times(maxUpdateAttempts)
		users.EXPECT().
			UpdateSpending(gomock.Any(), gomock.Any()).
			Return(models.User{}, store.ErrVersionConflict).
			Times(maxUpdateAttempts)

		_, err := svc.AddSpending(context.Background(), "user-1", request)
		assert.ErrorIs(t, err, store.ErrVersionConflict)
	})

	t.Run("bad date fails validation", func(t *testing.T) {
		svc, _ := newTestAccountService(t)

		bad := request
		bad.Date = "not-a-date"

		_, err := svc.AddSpending(context.Background(), "user-1", bad)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByID(gomock.Any(), "ghost").
			Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.AddSpending(context.Background(), "ghost", request)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestAccountService_DeleteSpending(t *testing.T) {
	baseUser := func() models.User {
		return models.User{
			ID:      "user-1",
			Version: 2,
			Spending: []models.SpendingEntry{
				{ID: "gym", Timestamp: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), BusinessName: "Gym", Amount: 30, Category: "sport"},
				{ID: "cafe", Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), BusinessName: "Cafe", Amount: 4.5, Category: "food"},
			},
		}
	}

	t.Run("removes the entry at the sorted position", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByID(gomock.Any(), "user-1").
			Return(baseUser(), nil)
		users.EXPECT().
			UpdateSpending(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
				user.Version++
				return user, nil
			})

		spending, err := svc.DeleteSpending(context.Background(), "user-1", models.DeleteSpendingRequest{Index: float64Ptr(0)})
		require.NoError(t, err)

		require.Len(t, spending, 1)
		assert.Equal(t, "Cafe", spending[0].BusinessName)
	})

	t.Run("out-of-range index", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByID(gomock.Any(), "user-1").
			Return(baseUser(), nil)

		_, err := svc.DeleteSpending(context.Background(), "user-1", models.DeleteSpendingRequest{Index: float64Ptr(5)})
		assert.ErrorIs(t, err, ErrSpendingIndexOutOfRange)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("negative index", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByID(gomock.Any(), "user-1").
			Return(baseUser(), nil)

		_, err := svc.DeleteSpending(context.Background(), "user-1", models.DeleteSpendingRequest{Index: float64Ptr(-1)})
		assert.ErrorIs(t, err, ErrSpendingIndexOutOfRange)
	})

	t.Run("missing index fails validation", func(t *testing.T) {
		svc, _ := newTestAccountService(t)

		_, err := svc.DeleteSpending(context.Background(), "user-1", models.DeleteSpendingRequest{})
		assert.ErrorIs(t, err, validators.ErrIndexRequired)
	})
}

func TestAccountService_AddBudget(t *testing.T) {
	baseUser := func() models.User {
		return models.User{
			ID:      "user-1",
			Version: 1,
			Budget: []models.BudgetEntry{
				{ID: "first", Timestamp: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Type: "monthly", Amount: 500},
			},
		}
	}

	t.Run("entry keeps insertion order", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByID(gomock.Any(), "user-1").
			Return(baseUser(), nil)
		users.EXPECT().
			UpdateBudget(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
				user.Version++
				return user, nil
			})

		budget, err := svc.AddBudget(context.Background(), "user-1", models.AddBudgetRequest{
			Date:   "2024-03-01",
			Type:   "weekly",
			Amount: float64Ptr(100),
		})
		require.NoError(t, err)

		// The new entry is appended even though its date precedes the
		// existing one: budget is never re-sorted.
		require.Len(t, budget, 2)
		assert.Equal(t, "monthly", budget[0].Type)
		assert.Equal(t, "weekly", budget[1].Type)
	})

	t.Run("missing date is stamped server-side", func(t *testing.T) {
		svc, users := newTestAccountService(t)

		users.EXPECT().
			FindUserByID(gomock.Any(), "user-1").
			Return(baseUser(), nil)
		users.EXPECT().
			UpdateBudget(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
				return user, nil
			})

		before := time.Now().UTC()
		budget, err := svc.AddBudget(context.Background(), "user-1", models.AddBudgetRequest{
			Type:   "weekly",
			Amount: float64Ptr(100),
		})
		require.NoError(t, err)

		require.Len(t, budget, 2)
		assert.False(t, budget[1].Timestamp.Before(before))
	})

	t.Run("missing amount fails validation", func(t *testing.T) {
		svc, _ := newTestAccountService(t)

		_, err := svc.AddBudget(context.Background(), "user-1", models.AddBudgetRequest{Type: "weekly"})
		assert.ErrorIs(t, err, validators.ErrAmountRequired)
	})
}

func TestAccountService_ParseToken(t *testing.T) {
	svc, _ := newTestAccountService(t)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ParseToken(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := utils.GenerateJWTToken(testAppCfg.TokenIssuer, "user-1", -time.Minute, testAppCfg.TokenSignKey)
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), expired.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		foreign, err := utils.GenerateJWTToken("someone-else", "user-1", time.Hour, testAppCfg.TokenSignKey)
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), foreign.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spendbook/internal/config"
	"spendbook/internal/logger"
	"spendbook/internal/store"
	"spendbook/internal/utils"
	"spendbook/internal/validators"
	"spendbook/models"
)

// maxUpdateAttempts bounds the optimistic-concurrency retry loop for ledger
// mutations. Conflicts are only possible when the same account mutates
// concurrently, so a handful of attempts is plenty.
const maxUpdateAttempts = 3

type accountService struct {
	users     store.UserRepository
	validator validators.Validator
	uuid      *utils.UUIDGenerator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAccountService constructs the AccountService backed by the given user
// repository. Token parameters come from the application config.
func NewAccountService(users store.UserRepository, validator validators.Validator, appCfg config.App, log *logger.Logger) AccountService {
	return &accountService{
		users:         users,
		validator:     validator,
		uuid:          utils.NewUUIDGenerator(),
		tokenSignKey:  appCfg.TokenSignKey,
		tokenIssuer:   appCfg.TokenIssuer,
		tokenDuration: appCfg.TokenDuration,
		logger:        log.GetChildLogger(),
	}
}

// CreateAccount validates the request, hashes the password, and persists a new
// user with empty spending/budget collections. Email uniqueness is enforced by
// the store; a duplicate surfaces as store.ErrEmailAlreadyExists.
func (s *accountService) CreateAccount(ctx context.Context, request models.CreateAccountRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, models.Token{}, NewValidationError(err)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           s.uuid.Generate(),
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		PasswordHash: passwordHash,
		Spending:     []models.SpendingEntry{},
		Budget:       []models.BudgetEntry{},
		Version:      1,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", request.Email).Msg("account already exists")
			return models.User{}, models.Token{}, err
		}
		log.Error().Err(err).Msg("user creation failed")
		return models.User{}, models.Token{}, err
	}

	token, err := s.createToken(created.ID)
	if err != nil {
		log.Error().Err(err).Msg("token creation failed for new account")
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("userID", created.ID).Msg("account created")
	return created, token, nil
}

// SignIn validates the credentials against the stored account and issues a
// fresh token. An unknown email and a wrong password yield distinct errors.
func (s *accountService) SignIn(ctx context.Context, request models.SignInRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, models.Token{}, NewValidationError(err)
	}

	user, err := s.users.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.Token{}, ErrInvalidEmail
		}
		log.Error().Err(err).Msg("sign-in lookup failed")
		return models.User{}, models.Token{}, err
	}

	if err = utils.CheckPassword(user.PasswordHash, request.Password); err != nil {
		return models.User{}, models.Token{}, ErrInvalidPassword
	}

	token, err := s.createToken(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("token creation failed on sign-in")
		return models.User{}, models.Token{}, err
	}

	user.SortSpending()
	log.Info().Str("userID", user.ID).Msg("signed in")
	return user, token, nil
}

// AddSpending appends a new spending entry and keeps the collection ordered
// newest-first. The write is retried on version conflicts.
func (s *accountService) AddSpending(ctx context.Context, userID string, request models.AddSpendingRequest) ([]models.SpendingEntry, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return nil, NewValidationError(err)
	}

	timestamp, err := validators.ParseDate(request.Date)
	if err != nil {
		return nil, NewValidationError(validators.ErrDateInvalid)
	}

	entry := models.SpendingEntry{
		ID:           s.uuid.Generate(),
		Timestamp:    timestamp,
		BusinessName: request.BusinessName,
		Amount:       request.Amount,
		Category:     request.Category,
	}

	updated, err := s.mutateSpending(ctx, userID, func(user *models.User) error {
		user.Spending = append(user.Spending, entry)
		user.SortSpending()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Str("userID", userID).
		Str("entryID", entry.ID).
		Msg("spending entry added")
	return updated.Spending, nil
}

// DeleteSpending removes the entry at the requested position in the sorted
// collection. The position is resolved to the entry's stable id before the
// conditional write, so a concurrent mutation cannot delete the wrong entry.
func (s *accountService) DeleteSpending(ctx context.Context, userID string, request models.DeleteSpendingRequest) ([]models.SpendingEntry, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return nil, NewValidationError(err)
	}
	index := int(*request.Index)

	var deletedID string
	updated, err := s.mutateSpending(ctx, userID, func(user *models.User) error {
		user.SortSpending()
		if index < 0 || index >= len(user.Spending) {
			return NewValidationError(ErrSpendingIndexOutOfRange)
		}

		deletedID = user.Spending[index].ID
		user.Spending = append(user.Spending[:index], user.Spending[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Str("userID", userID).
		Str("entryID", deletedID).
		Msg("spending entry deleted")
	return updated.Spending, nil
}

// AddBudget appends a budget entry, stamping it server-side when the request
// carries no date. Budget keeps insertion order.
func (s *accountService) AddBudget(ctx context.Context, userID string, request models.AddBudgetRequest) ([]models.BudgetEntry, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return nil, NewValidationError(err)
	}

	timestamp := time.Now().UTC()
	if request.Date != "" {
		parsed, err := validators.ParseDate(request.Date)
		if err != nil {
			return nil, NewValidationError(validators.ErrDateInvalid)
		}
		timestamp = parsed
	}

	entry := models.BudgetEntry{
		ID:          s.uuid.Generate(),
		Timestamp:   timestamp,
		Type:        request.Type,
		Amount:      *request.Amount,
		Description: request.Description,
	}

	var updated models.User
	err := s.withRetry(ctx, func() error {
		user, err := s.users.FindUserByID(ctx, userID)
		if err != nil {
			return err
		}

		user.Budget = append(user.Budget, entry)
		updated, err = s.users.UpdateBudget(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Str("userID", userID).
		Str("entryID", entry.ID).
		Msg("budget entry added")
	return updated.Budget, nil
}

// ParseToken validates the signed token string and extracts its claims. Every
// failure mode collapses into ErrTokenIsExpiredOrInvalid for the caller.
func (s *accountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// mutateSpending loads the user, applies fn to the in-memory copy, and writes
// the spending collection back conditionally on the loaded version. A
// concurrent write shows up as ErrVersionConflict and the whole
// load-mutate-write cycle is retried.
func (s *accountService) mutateSpending(ctx context.Context, userID string, fn func(user *models.User) error) (models.User, error) {
	var updated models.User

	err := s.withRetry(ctx, func() error {
		user, err := s.users.FindUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if err = fn(&user); err != nil {
			return err
		}

		updated, err = s.users.UpdateSpending(ctx, user)
		return err
	})
	if err != nil {
		return models.User{}, err
	}

	return updated, nil
}

func (s *accountService) withRetry(ctx context.Context, attempt func() error) error {
	var err error
	for i := 0; i < maxUpdateAttempts; i++ {
		err = attempt()
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return err
		}

		logger.FromContext(ctx).Debug().
			Int("attempt", i+1).
			Msg("version conflict, retrying update")

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return err
}

func (s *accountService) createToken(userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, errors.Join(ErrTokenCreationFailed, err)
	}

	return token, nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"spendbook/internal/logger"
	"spendbook/models"
)

// userColumns is the canonical column order used by every user query.
var userColumns = []string{
	"id", "first_name", "last_name", "email", "password_hash",
	"spending", "budget", "version", "created_at",
}

// userRepository is the SQL-backed implementation of [UserRepository].
// Spending and budget collections travel as JSON blobs inside the users row,
// so every operation is a single-row read or conditional write.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. The caller supplies the generated
// id, hash, and creation timestamp; collections are normalised to empty
// arrays so the stored document never holds JSON null.
//
// A unique-violation from the email index becomes [ErrEmailAlreadyExists];
// any other driver error is wrapped as an unexpected DB error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	spending, budget, err := marshalCollections(&user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: marshaling collections")
		return models.User{}, err
	}

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
			string(spending), string(budget), user.Version, user.CreatedAt).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error: executing insert")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose email equals the given value.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, sq.Eq{"email": email})
}

// FindUserByID retrieves the user with the given id.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUserBy(ctx, sq.Eq{"id": id})
}

// UpdateSpending implements the conditional spending write; see
// [UserRepository].
func (r *userRepository) UpdateSpending(ctx context.Context, user models.User) (models.User, error) {
	if user.Spending == nil {
		user.Spending = []models.SpendingEntry{}
	}

	raw, err := json.Marshal(user.Spending)
	if err != nil {
		return models.User{}, fmt.Errorf("error marshaling spending: %w", err)
	}

	return r.conditionalUpdate(ctx, user, "spending", string(raw))
}

// UpdateBudget implements the conditional budget write; see [UserRepository].
func (r *userRepository) UpdateBudget(ctx context.Context, user models.User) (models.User, error) {
	if user.Budget == nil {
		user.Budget = []models.BudgetEntry{}
	}

	raw, err := json.Marshal(user.Budget)
	if err != nil {
		return models.User{}, fmt.Errorf("error marshaling budget: %w", err)
	}

	return r.conditionalUpdate(ctx, user, "budget", string(raw))
}

func (r *userRepository) findUserBy(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building select query: %w", err)
	}

	var user models.User
	var spending, budget []byte

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash,
		&spending, &budget, &user.Version, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = json.Unmarshal(spending, &user.Spending); err != nil {
		return models.User{}, fmt.Errorf("error unmarshaling spending: %w", err)
	}
	if err = json.Unmarshal(budget, &user.Budget); err != nil {
		return models.User{}, fmt.Errorf("error unmarshaling budget: %w", err)
	}

	return user, nil
}

// conditionalUpdate writes one collection column guarded by the optimistic
// version check. Zero affected rows means another writer got there first.
func (r *userRepository) conditionalUpdate(ctx context.Context, user models.User, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(user.TableName()).
		Set(column, value).
		Set("version", user.Version+1).
		Where(sq.Eq{"id": user.ID, "version": user.Version}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.conditionalUpdate").
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error: executing update")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.User{}, ErrVersionConflict
	}

	user.Version++
	return user, nil
}

func marshalCollections(user *models.User) (spending, budget []byte, err error) {
	if user.Spending == nil {
		user.Spending = []models.SpendingEntry{}
	}
	if user.Budget == nil {
		user.Budget = []models.BudgetEntry{}
	}

	if spending, err = json.Marshal(user.Spending); err != nil {
		return nil, nil, fmt.Errorf("error marshaling spending: %w", err)
	}
	if budget, err = json.Marshal(user.Budget); err != nil {
		return nil, nil, fmt.Errorf("error marshaling budget: %w", err)
	}

	return spending, budget, nil
}

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "wrapped retryable", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}

	t.Run("unique violation detection", func(t *testing.T) {
		assert.True(t, c.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
		assert.False(t, c.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
		assert.False(t, c.IsUniqueViolation(errors.New("boom")))
	})
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	t.Run("busy and locked are retryable", func(t *testing.T) {
		assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
		assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	})

	t.Run("constraint violations are not", func(t *testing.T) {
		err := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
		assert.Equal(t, NonRetryable, c.Classify(err))
	})

	t.Run("unknown errors are not", func(t *testing.T) {
		assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
		assert.Equal(t, NonRetryable, c.Classify(nil))
	})

	t.Run("unique violation detection", func(t *testing.T) {
		unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
		pk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
		notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

		assert.True(t, c.IsUniqueViolation(unique))
		assert.True(t, c.IsUniqueViolation(pk))
		assert.False(t, c.IsUniqueViolation(notNull))
		assert.False(t, c.IsUniqueViolation(errors.New("boom")))
	})
}

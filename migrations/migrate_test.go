package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db, "sqlite3"))

	// The users table and its unique email index must exist afterwards.
	_, err = db.Exec(`INSERT INTO users (id, first_name, last_name, email, password_hash, created_at)
		VALUES ('u1', 'Ada', 'Lovelace', 'ada@example.com', 'hash', '2024-01-01 00:00:00')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (id, first_name, last_name, email, password_hash, created_at)
		VALUES ('u2', 'Other', 'Ada', 'ada@example.com', 'hash', '2024-01-01 00:00:00')`)
	assert.Error(t, err, "duplicate email must violate the unique index")

	// Defaults: empty JSON collections and version 1.
	var spending, budget string
	var version int64
	require.NoError(t, db.QueryRow(`SELECT spending, budget, version FROM users WHERE id = 'u1'`).
		Scan(&spending, &budget, &version))
	assert.Equal(t, "[]", spending)
	assert.Equal(t, "[]", budget)
	assert.EqualValues(t, 1, version)
}

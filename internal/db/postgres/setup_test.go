package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"Quill/internal/core/users"
)

// setupTestDB connects to the test database and runs migrations.
// Tests are skipped when TEST_DATABASE_URL is not set.
func setupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres repository tests")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../migrations"), "Failed to run migrations")

	return db
}

// cleanupAll removes every row; each test starts from an empty store
func cleanupAll(t *testing.T, db *sql.DB) {
	// Reverse order of foreign key dependencies
	for _, table := range []string{"follows", "comments", "posts", "groups", "users"} {
		_, err := db.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}

// createTestUser inserts a user directly, bypassing the service
func createTestUser(t *testing.T, db *sql.DB, username string) *users.User {
	repo := NewUserRepository(db)
	user, err := repo.Create(context.Background(), &users.User{
		Username:     username,
		PasswordHash: "test-hash",
	})
	require.NoError(t, err)
	return user
}

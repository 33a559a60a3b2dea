package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Quill/internal/core/follows"
)

func TestFollowCreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewFollowRepository(db)
	reader := createTestUser(t, db, "idem_reader")
	author := createTestUser(t, db, "idem_author")

	require.NoError(t, repo.Create(context.Background(), reader.ID, author.ID))
	require.NoError(t, repo.Create(context.Background(), reader.ID, author.ID))

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM follows WHERE user_id = $1 AND author_id = $2`,
		reader.ID, author.ID,
	).Scan(&count))
	assert.Equal(t, 1, count, "double follow must leave a single edge")

	following, err := repo.CountFollowing(context.Background(), reader.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, following)
}

func TestFollowDeleteMissingEdge(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewFollowRepository(db)
	reader := createTestUser(t, db, "missing_reader")
	author := createTestUser(t, db, "missing_author")

	err := repo.Delete(context.Background(), reader.ID, author.ID)
	assert.ErrorIs(t, err, follows.ErrNotFollowing)
}

func TestFollowRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewFollowRepository(db)
	reader := createTestUser(t, db, "rt_reader")
	author := createTestUser(t, db, "rt_author")

	exists, err := repo.Exists(context.Background(), reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(context.Background(), reader.ID, author.ID))

	exists, err = repo.Exists(context.Background(), reader.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	followers, err := repo.ListFollowers(context.Background(), author.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{reader.ID}, followers)

	require.NoError(t, repo.Delete(context.Background(), reader.ID, author.ID))

	exists, err = repo.Exists(context.Background(), reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowSelfEdgeRejectedByStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	reader := createTestUser(t, db, "self_reader")

	// Bypass the service guard; the CHECK constraint must still hold
	_, err := db.Exec(`INSERT INTO follows (user_id, author_id) VALUES ($1, $1)`, reader.ID)
	require.Error(t, err)
}

func TestUserDeleteCascadesFollowEdges(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewFollowRepository(db)
	leaving := createTestUser(t, db, "leaving")
	other := createTestUser(t, db, "other")

	require.NoError(t, repo.Create(context.Background(), leaving.ID, other.ID))
	require.NoError(t, repo.Create(context.Background(), other.ID, leaving.ID))

	_, err := db.Exec(`DELETE FROM users WHERE id = $1`, leaving.ID)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM follows WHERE user_id = $1 OR author_id = $1`,
		leaving.ID,
	).Scan(&count))
	assert.Equal(t, 0, count, "both directions of the graph must drop with the user")

	remaining, err := repo.CountFollowers(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

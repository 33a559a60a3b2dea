package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Quill/internal/core/groups"
	"Quill/internal/core/posts"
)

// insertPostAt inserts a post with an explicit timestamp so ordering
// tests control created_at precisely
func insertPostAt(t *testing.T, db *sql.DB, text string, authorID int64, groupID *int64, at time.Time) int64 {
	var id int64
	err := db.QueryRow(`
		INSERT INTO posts (text, author_id, group_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		text, authorID, nullInt64(groupID), at,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestListAllOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewPostRepository(db)
	author := createTestUser(t, db, "ordering_author")

	base := time.Now().Add(-time.Hour)
	insertPostAt(t, db, "a", author.ID, nil, base)
	insertPostAt(t, db, "b", author.ID, nil, base.Add(time.Minute))
	insertPostAt(t, db, "c", author.ID, nil, base.Add(2*time.Minute))

	listed, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)

	texts := []string{listed[0].Text, listed[1].Text, listed[2].Text}
	assert.Equal(t, []string{"c", "b", "a"}, texts)

	for i := 1; i < len(listed); i++ {
		assert.False(t, listed[i-1].CreatedAt.Before(listed[i].CreatedAt),
			"feed must be non-increasing by created_at")
	}
}

func TestListAllBreaksTimestampTiesByID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewPostRepository(db)
	author := createTestUser(t, db, "tie_author")

	at := time.Now().Truncate(time.Second)
	first := insertPostAt(t, db, "first", author.ID, nil, at)
	second := insertPostAt(t, db, "second", author.ID, nil, at)

	listed, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Same instant: higher id (inserted later) sorts first
	assert.Equal(t, second, listed[0].ID)
	assert.Equal(t, first, listed[1].ID)
}

func TestListByGroupIDIsolation(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewPostRepository(db)
	groupRepo := NewGroupRepository(db)
	author := createTestUser(t, db, "group_author")

	groupA, err := groupRepo.Create(context.Background(), &groups.Group{Title: "A", Slug: "group-a"})
	require.NoError(t, err)
	groupB, err := groupRepo.Create(context.Background(), &groups.Group{Title: "B", Slug: "group-b"})
	require.NoError(t, err)

	now := time.Now()
	insertPostAt(t, db, "in A", author.ID, &groupA.ID, now)
	insertPostAt(t, db, "in B", author.ID, &groupB.ID, now)
	insertPostAt(t, db, "ungrouped", author.ID, nil, now)

	inB, err := repo.ListByGroupID(context.Background(), groupB.ID)
	require.NoError(t, err)
	require.Len(t, inB, 1)
	assert.Equal(t, "in B", inB[0].Text)
}

func TestDeletePostCascadesComments(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewPostRepository(db)
	author := createTestUser(t, db, "cascade_author")

	postID := insertPostAt(t, db, "to delete", author.ID, nil, time.Now())

	_, err := db.Exec(`INSERT INTO comments (post_id, author_id, text) VALUES ($1, $2, 'bye')`,
		postID, author.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), postID))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&count))
	assert.Equal(t, 0, count, "comments must cascade with their post")

	_, err = repo.GetByID(context.Background(), postID)
	assert.ErrorIs(t, err, posts.ErrNotFound)
}

func TestGroupDeleteNullsPostReference(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewPostRepository(db)
	groupRepo := NewGroupRepository(db)
	author := createTestUser(t, db, "setnull_author")

	group, err := groupRepo.Create(context.Background(), &groups.Group{Title: "Doomed", Slug: "doomed"})
	require.NoError(t, err)

	postID := insertPostAt(t, db, "survivor", author.ID, &group.ID, time.Now())

	_, err = db.Exec(`DELETE FROM groups WHERE id = $1`, group.ID)
	require.NoError(t, err)

	post, err := repo.GetByID(context.Background(), postID)
	require.NoError(t, err)
	assert.Nil(t, post.GroupID, "post must survive group deletion with a nulled reference")
}

func TestListByFollowedAuthors(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)

	reader := createTestUser(t, db, "reader")
	followed := createTestUser(t, db, "followed")
	stranger := createTestUser(t, db, "stranger")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		insertPostAt(t, db, fmt.Sprintf("followed %d", i), followed.ID, nil, base.Add(time.Duration(i)*time.Minute))
	}
	insertPostAt(t, db, "noise", stranger.ID, nil, base)

	require.NoError(t, followRepo.Create(context.Background(), reader.ID, followed.ID))

	feed, err := repo.ListByFollowedAuthors(context.Background(), reader.ID)
	require.NoError(t, err)
	require.Len(t, feed, 15)
	for _, post := range feed {
		assert.Equal(t, followed.ID, post.AuthorID)
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	cleanupAll(t, db)

	repo := NewPostRepository(db)
	groupRepo := NewGroupRepository(db)
	author := createTestUser(t, db, "roundtrip_author")

	group, err := groupRepo.Create(context.Background(), &groups.Group{Title: "Travel", Slug: "travel"})
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), &posts.Post{
		Text:     "first post",
		AuthorID: author.ID,
		GroupID:  &group.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "roundtrip_author", created.AuthorUsername)
	require.NotNil(t, created.GroupSlug)
	assert.Equal(t, "travel", *created.GroupSlug)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Text, got.Text)
}

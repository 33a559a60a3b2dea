package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"Quill/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postColumns is the select list shared by every post query. Author and
// group fields are joined in so feed rows come back fully hydrated.
const postColumns = `
	p.id, p.text, p.author_id, u.username, p.group_id, g.slug, g.title,
	p.image_key, p.created_at,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count`

const postFrom = `
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id`

// Feed ordering: newest first, id as tie-break so pagination is stable
// across calls even when posts share a created_at instant.
const postOrder = ` ORDER BY p.created_at DESC, p.id DESC`

func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (text, author_id, group_id, image_key)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		post.Text,
		post.AuthorID,
		nullInt64(post.GroupID),
		nullString(post.ImageKey),
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			if strings.Contains(err.Error(), "posts_author_id_fkey") {
				return nil, fmt.Errorf("author not found: %d", post.AuthorID)
			}
			if strings.Contains(err.Error(), "posts_group_id_fkey") {
				return nil, posts.ErrGroupNotFound
			}
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return r.GetByID(ctx, post.ID)
}

func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + ` WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET text = $2, group_id = $3, image_key = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		post.ID,
		post.Text,
		nullInt64(post.GroupID),
		nullString(post.ImageKey),
	)
	if err != nil {
		if strings.Contains(err.Error(), "posts_group_id_fkey") {
			return nil, posts.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return nil, posts.ErrNotFound
	}

	return r.GetByID(ctx, post.ID)
}

func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	// Comments cascade via comments_post_id_fkey ON DELETE CASCADE
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

func (r *postgresPostRepo) ListAll(ctx context.Context) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + postOrder
	return r.queryPosts(ctx, query)
}

func (r *postgresPostRepo) ListByGroupID(ctx context.Context, groupID int64) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + ` WHERE p.group_id = $1` + postOrder
	return r.queryPosts(ctx, query, groupID)
}

func (r *postgresPostRepo) ListByAuthorID(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + ` WHERE p.author_id = $1` + postOrder
	return r.queryPosts(ctx, query, authorID)
}

func (r *postgresPostRepo) ListByFollowedAuthors(ctx context.Context, userID int64) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + `
		WHERE p.author_id IN (
			SELECT f.author_id FROM follows f WHERE f.user_id = $1
		)` + postOrder
	return r.queryPosts(ctx, query, userID)
}

func (r *postgresPostRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*posts.Post{}
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan post: %w", scanErr)
		}
		result = append(result, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	var groupID sql.NullInt64
	var groupSlug, groupTitle, imageKey sql.NullString

	err := row.Scan(
		&post.ID,
		&post.Text,
		&post.AuthorID,
		&post.AuthorUsername,
		&groupID,
		&groupSlug,
		&groupTitle,
		&imageKey,
		&post.CreatedAt,
		&post.CommentCount,
	)
	if err != nil {
		return nil, err
	}

	if groupID.Valid {
		post.GroupID = &groupID.Int64
	}
	if groupSlug.Valid {
		post.GroupSlug = &groupSlug.String
	}
	if groupTitle.Valid {
		post.GroupTitle = &groupTitle.String
	}
	if imageKey.Valid {
		post.ImageKey = &imageKey.String
	}

	return &post, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"Quill/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.AuthorID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "comments_post_id_fkey") {
			return nil, comments.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	// Fill in the author username for the response
	err = r.db.QueryRowContext(ctx,
		`SELECT username FROM users WHERE id = $1`, comment.AuthorID,
	).Scan(&comment.AuthorUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve comment author: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepo) ListByPostID(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	// Oldest first: comments read top to bottom under the post
	query := `
		SELECT c.id, c.post_id, c.author_id, u.username, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*comments.Comment{}
	for rows.Next() {
		var comment comments.Comment
		scanErr := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.AuthorUsername,
			&comment.Text,
			&comment.CreatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", scanErr)
		}
		result = append(result, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

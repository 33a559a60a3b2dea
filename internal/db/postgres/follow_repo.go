package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"Quill/internal/core/authz"
	"Quill/internal/core/follows"
)

type postgresFollowRepo struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow graph repository
func NewFollowRepository(db *sql.DB) follows.Repository {
	return &postgresFollowRepo{db: db}
}

// Create inserts the follow edge if it does not already exist.
// ON CONFLICT DO NOTHING makes duplicate follows a no-op, including the
// concurrent case: the second insert observes the first edge through the
// unique constraint instead of erroring.
func (r *postgresFollowRepo) Create(ctx context.Context, userID, authorID int64) error {
	query := `
		INSERT INTO follows (user_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, author_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		// The CHECK constraint backstops the service-level guard
		if strings.Contains(err.Error(), "follows_no_self_follow") {
			return authz.ErrSelfFollow
		}
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return fmt.Errorf("follow endpoint does not exist: %w", err)
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

func (r *postgresFollowRepo) Delete(ctx context.Context, userID, authorID int64) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check unfollow result: %w", err)
	}
	if rowsAffected == 0 {
		return follows.ErrNotFollowing
	}

	return nil
}

func (r *postgresFollowRepo) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, authorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

func (r *postgresFollowRepo) ListFollowers(ctx context.Context, authorID int64) ([]int64, error) {
	query := `SELECT user_id FROM follows WHERE author_id = $1 ORDER BY created_at DESC`
	return r.queryIDs(ctx, query, authorID)
}

func (r *postgresFollowRepo) ListFollowing(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT author_id FROM follows WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryIDs(ctx, query, userID)
}

func (r *postgresFollowRepo) CountFollowers(ctx context.Context, authorID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE author_id = $1`, authorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}

func (r *postgresFollowRepo) CountFollowing(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}
	return count, nil
}

func (r *postgresFollowRepo) queryIDs(ctx context.Context, query string, arg int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow edges: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []int64{}
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("failed to scan follow edge: %w", scanErr)
		}
		result = append(result, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follow edges: %w", err)
	}

	return result, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"Quill/internal/core/groups"
)

type postgresGroupRepo struct {
	db *sql.DB
}

// NewGroupRepository creates a new PostgreSQL group repository
func NewGroupRepository(db *sql.DB) groups.Repository {
	return &postgresGroupRepo{db: db}
}

func (r *postgresGroupRepo) Create(ctx context.Context, group *groups.Group) (*groups.Group, error) {
	query := `
		INSERT INTO groups (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, group.Title, group.Slug, group.Description).
		Scan(&group.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "groups_slug_key") {
			return nil, groups.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to insert group: %w", err)
	}

	return group, nil
}

func (r *postgresGroupRepo) GetByID(ctx context.Context, id int64) (*groups.Group, error) {
	query := `SELECT id, title, slug, description FROM groups WHERE id = $1`

	var group groups.Group
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&group.ID, &group.Title, &group.Slug, &group.Description)
	if err == sql.ErrNoRows {
		return nil, groups.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return &group, nil
}

func (r *postgresGroupRepo) GetBySlug(ctx context.Context, slug string) (*groups.Group, error) {
	query := `SELECT id, title, slug, description FROM groups WHERE slug = $1`

	var group groups.Group
	err := r.db.QueryRowContext(ctx, query, slug).
		Scan(&group.ID, &group.Title, &group.Slug, &group.Description)
	if err == sql.ErrNoRows {
		return nil, groups.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group by slug: %w", err)
	}

	return &group, nil
}

func (r *postgresGroupRepo) List(ctx context.Context) ([]*groups.Group, error) {
	query := `SELECT id, title, slug, description FROM groups ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*groups.Group{}
	for rows.Next() {
		var group groups.Group
		if scanErr := rows.Scan(&group.ID, &group.Title, &group.Slug, &group.Description); scanErr != nil {
			return nil, fmt.Errorf("failed to scan group: %w", scanErr)
		}
		result = append(result, &group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}

	return result, nil
}

func (r *postgresGroupRepo) Update(ctx context.Context, group *groups.Group) (*groups.Group, error) {
	query := `
		UPDATE groups
		SET title = $2, description = $3
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, group.ID, group.Title, group.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return nil, groups.ErrNotFound
	}

	return group, nil
}

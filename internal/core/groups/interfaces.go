package groups

import "context"

// Service defines the business logic interface for groups
type Service interface {
	// GetBySlug resolves a group by its unique slug
	GetBySlug(ctx context.Context, slug string) (*Group, error)

	// List returns all groups ordered by title
	List(ctx context.Context) ([]*Group, error)

	// Create creates a new group
	Create(ctx context.Context, req CreateGroupRequest) (*Group, error)

	// Update applies an explicit edit to an existing group
	Update(ctx context.Context, id int64, req UpdateGroupRequest) (*Group, error)
}

// Repository defines the data access interface for groups
type Repository interface {
	Create(ctx context.Context, group *Group) (*Group, error)
	GetByID(ctx context.Context, id int64) (*Group, error)
	GetBySlug(ctx context.Context, slug string) (*Group, error)
	List(ctx context.Context) ([]*Group, error)
	Update(ctx context.Context, group *Group) (*Group, error)
}

package follows

import "context"

// Service defines the business logic interface for the follow graph
type Service interface {
	// Follow creates an edge from userID to authorID. Following yourself
	// fails with authz.ErrSelfFollow. Following an author twice is a
	// no-op: one edge, no error.
	Follow(ctx context.Context, userID, authorID int64) error

	// Unfollow removes the edge from userID to authorID. Fails with
	// ErrNotFollowing when no such edge exists.
	Unfollow(ctx context.Context, userID, authorID int64) error

	// IsFollowing reports whether the edge userID -> authorID exists
	IsFollowing(ctx context.Context, userID, authorID int64) (bool, error)

	// FollowersOf returns the ids of users following authorID
	FollowersOf(ctx context.Context, authorID int64) ([]int64, error)

	// FollowingOf returns the ids of authors userID follows
	FollowingOf(ctx context.Context, userID int64) ([]int64, error)

	// FollowerCount returns how many users follow authorID
	FollowerCount(ctx context.Context, authorID int64) (int, error)

	// FollowingCount returns how many authors userID follows
	FollowingCount(ctx context.Context, userID int64) (int, error)
}

// Repository defines the data access interface for follow edges
type Repository interface {
	// Create inserts the edge if absent. Must be idempotent: a concurrent
	// duplicate resolves through the store's unique constraint as a no-op.
	Create(ctx context.Context, userID, authorID int64) error

	// Delete removes the edge, returning ErrNotFollowing if it was absent
	Delete(ctx context.Context, userID, authorID int64) error

	Exists(ctx context.Context, userID, authorID int64) (bool, error)
	ListFollowers(ctx context.Context, authorID int64) ([]int64, error)
	ListFollowing(ctx context.Context, userID int64) ([]int64, error)
	CountFollowers(ctx context.Context, authorID int64) (int, error)
	CountFollowing(ctx context.Context, userID int64) (int, error)
}

package comments

import "context"

// Service defines the business logic interface for comments
type Service interface {
	// Create adds a comment to an existing post. Fails with
	// ErrPostNotFound when the post id does not resolve.
	Create(ctx context.Context, req CreateCommentRequest) (*Comment, error)

	// ListByPost returns a post's comments, oldest first
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	Create(ctx context.Context, comment *Comment) (*Comment, error)
	ListByPostID(ctx context.Context, postID int64) ([]*Comment, error)
}

package posts

import "context"

// Service defines the business logic interface for posts.
// List operations return complete ordered slices; the feeds package
// slices them into pages.
type Service interface {
	// ListAll returns every post, newest first
	ListAll(ctx context.Context) ([]*Post, error)

	// ListByGroup returns posts filed under the group with the given slug,
	// newest first. Fails with ErrGroupNotFound if the slug is unknown.
	ListByGroup(ctx context.Context, slug string) ([]*Post, error)

	// ListByAuthor returns posts written by the named user, newest first.
	// Fails with ErrAuthorNotFound if the username is unknown.
	ListByAuthor(ctx context.Context, username string) ([]*Post, error)

	// ListByFollowedAuthors returns posts written by authors the given
	// user follows, newest first
	ListByFollowedAuthors(ctx context.Context, userID int64) ([]*Post, error)

	// Get retrieves a single post by id
	Get(ctx context.Context, id int64) (*Post, error)

	// Create stores a new post and invalidates the home feed cache
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)

	// Update edits a post. Only the author may edit; anyone else gets
	// authz.ErrNotAuthorized and the post is left untouched.
	Update(ctx context.Context, postID, actorID int64, req UpdatePostRequest) (*Post, error)

	// Delete removes a post and, via the store's cascade, its comments.
	// Same authorization rule as Update.
	Delete(ctx context.Context, postID, actorID int64) error
}

// Repository defines the data access interface for posts
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, post *Post) (*Post, error)
	Delete(ctx context.Context, id int64) error

	ListAll(ctx context.Context) ([]*Post, error)
	ListByGroupID(ctx context.Context, groupID int64) ([]*Post, error)
	ListByAuthorID(ctx context.Context, authorID int64) ([]*Post, error)
	ListByFollowedAuthors(ctx context.Context, userID int64) ([]*Post, error)
}

// FeedInvalidator clears the cached home feed. Implemented by the feeds
// cache; post writes call it so the next home feed read recomputes.
type FeedInvalidator interface {
	Invalidate()
}

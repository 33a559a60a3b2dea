package feeds

import (
	"context"

	"Quill/internal/core/groups"
	"Quill/internal/core/posts"
)

// PostFeed is a paginated view over a filtered subset of posts
type PostFeed = Page[*posts.Post]

// GroupFeed is a group's page of posts together with the group itself
type GroupFeed struct {
	Group *groups.Group `json:"group"`
	Page  PostFeed      `json:"page"`
}

// Service assembles the paginated feed views. The home feed may be
// served from the cache; everything else recomputes on every request.
type Service interface {
	// Home returns the requested page of the global feed
	Home(ctx context.Context, page int) (*PostFeed, error)

	// Group returns the requested page of a group's feed. Fails with
	// posts.ErrGroupNotFound on an unknown slug.
	Group(ctx context.Context, slug string, page int) (*GroupFeed, error)

	// Author returns the requested page of a single author's posts.
	// Fails with posts.ErrAuthorNotFound on an unknown username.
	Author(ctx context.Context, username string, page int) (*PostFeed, error)

	// Following returns the requested page of posts by authors the user
	// follows
	Following(ctx context.Context, userID int64, page int) (*PostFeed, error)
}

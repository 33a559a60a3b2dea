package posts

import (
	"time"
)

// Post is a single entry in the feed. Author and group fields are
// denormalized from their tables so feed views render without extra
// lookups. GroupID is nullable: deleting a group nulls the reference
// instead of deleting the post. Deleting the author deletes the post.
type Post struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Text           string    `json:"text" db:"text"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	GroupSlug      *string   `json:"groupSlug,omitempty" db:"group_slug"`
	GroupTitle     *string   `json:"groupTitle,omitempty" db:"group_title"`
	GroupID        *int64    `json:"groupId,omitempty" db:"group_id"`
	ImageKey       *string   `json:"imageKey,omitempty" db:"image_key"`
	ID             int64     `json:"id" db:"id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
	CommentCount   int       `json:"commentCount" db:"comment_count"`
}

// CreatePostRequest represents input for creating a new post.
// Text validation (non-empty) happens at the form boundary; the service
// stores whatever text it is handed.
type CreatePostRequest struct {
	Text     string  `json:"text"`
	GroupID  *int64  `json:"groupId,omitempty"`
	ImageKey *string `json:"imageKey,omitempty"`
	AuthorID int64   `json:"-"`
}

// UpdatePostRequest represents an edit of an existing post. Nil fields
// are left unchanged; RemoveGroup clears the group reference.
type UpdatePostRequest struct {
	Text        *string `json:"text,omitempty"`
	GroupID     *int64  `json:"groupId,omitempty"`
	ImageKey    *string `json:"imageKey,omitempty"`
	RemoveGroup bool    `json:"removeGroup,omitempty"`
}

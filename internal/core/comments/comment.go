package comments

import (
	"time"
)

// Comment is a reply on a post. Comments are created through the post
// detail page and never edited or deleted directly; they disappear when
// their post or their author is deleted.
type Comment struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Text           string    `json:"text" db:"text"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	ID             int64     `json:"id" db:"id"`
	PostID         int64     `json:"postId" db:"post_id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
}

// CreateCommentRequest represents input for creating a new comment
type CreateCommentRequest struct {
	Text     string `json:"text"`
	PostID   int64  `json:"-"`
	AuthorID int64  `json:"-"`
}

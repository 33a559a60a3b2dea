package follows

import (
	"time"
)

// Follow is a directed edge: user_id receives author_id's posts in their
// follow feed. At most one edge exists per (user, author) pair and a user
// never follows themselves; both are enforced by store constraints as
// well as by the service.
type Follow struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
}

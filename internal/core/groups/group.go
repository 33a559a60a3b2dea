package groups

// Group is a community that posts can be filed under. The slug is the
// external-facing identifier used in feed URLs.
type Group struct {
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
	ID          int64  `json:"id" db:"id"`
}

// CreateGroupRequest represents input for creating a new group
type CreateGroupRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// UpdateGroupRequest represents an explicit edit of an existing group.
// Nil fields are left unchanged.
type UpdateGroupRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

package users

import (
	"time"
)

// User is an account on the platform. Identity here is deliberately thin:
// a unique username plus credentials. Everything else (posts, comments,
// follow edges) references users by id.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ID           int64     `json:"id" db:"id"`
}

// RegisterRequest is the input for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Profile is the public view of a user together with the aggregate
// counts shown on the profile page
type Profile struct {
	User           *User `json:"user"`
	PostCount      int   `json:"postCount"`
	FollowerCount  int   `json:"followerCount"`
	FollowingCount int   `json:"followingCount"`
	// Following reports whether the viewing user follows this profile's
	// owner. Always false for anonymous viewers.
	Following bool `json:"following"`
}

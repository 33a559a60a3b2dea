package users

import "context"

// Service defines the business logic interface for user accounts
type Service interface {
	// Register creates a new account with a bcrypt-hashed password
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Authenticate verifies credentials and returns the matching user
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername retrieves a user by their unique username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Delete removes an account. Posts, comments and follow edges owned by
	// the account are removed by the store's cascade rules.
	Delete(ctx context.Context, id int64) error
}

// Repository defines the data access interface for users
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Delete(ctx context.Context, id int64) error
}

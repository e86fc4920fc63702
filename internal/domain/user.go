package domain

import "context"

// User represents a reader identified by an external auth provider.
// The ID is the provider's subject id; rows are created the first time a
// signed-in user is observed and are never updated or deleted here.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, user *User) error
	Exists(ctx context.Context, id string) (bool, error)
}

// UserService defines the use-case operations for users.
type UserService interface {
	Register(ctx context.Context, id, email string) (string, error)
	Exists(ctx context.Context, id string) (bool, error)
}

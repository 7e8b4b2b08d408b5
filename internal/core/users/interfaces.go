package users

import (
	"context"

	"Postagram/internal/core/lookup"
	"Postagram/internal/core/pagination"
	"Postagram/internal/core/result"
)

// Repository defines the data access interface for users.
// Implementations: internal/db/memory (ephemeral) and internal/db/postgres (persistent).
// Both must behave identically: insertion ordering, ErrNotFound on missing ids,
// ErrUsernameTaken/ErrEmailTaken on uniqueness violations.
type Repository interface {
	// Create assigns ID and timestamps and stores the user
	Create(ctx context.Context, input NewUser) (*User, error)

	// GetByID returns ErrNotFound when no user has the id
	GetByID(ctx context.Context, id string) (*User, error)

	// List returns users matching filter in creation order, windowed by page
	List(ctx context.Context, filter ListFilter, page pagination.Page) ([]*User, error)

	// Delete hard-deletes a user. Returns ErrNotFound when the id is unknown.
	Delete(ctx context.Context, id string) error
}

// Service defines the business logic interface for users.
// Every method reports its outcome through the result envelope and never returns an error.
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) result.Result[*User]
	GetUserByID(ctx context.Context, id string) result.Result[*User]
	GetUsers(ctx context.Context, take, skip int) result.Result[[]*User]
	DeleteUser(ctx context.Context, id string) result.Result[*User]
}

// Exists resolves id through repo. Used by the other services to validate owner references.
func Exists(ctx context.Context, repo Repository, id string) (bool, error) {
	return lookup.Exists(ctx, repo.GetByID, id, ErrNotFound)
}

package memory

import (
	"context"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/users"
	"Postagram/internal/db"
)

// UserRepository is the in-memory users.Repository
type UserRepository struct {
	rows *table[users.User]
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{rows: newTable(func(u *users.User) string { return u.ID })}
}

// Create stores the user, enforcing unique username and email like the users table does
func (r *UserRepository) Create(_ context.Context, input users.NewUser) (*users.User, error) {
	now := db.Now()
	user := &users.User{
		ID:           db.NewID(),
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: input.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return r.rows.insert(user, func(existing *users.User) error {
		if existing.Username == user.Username {
			return users.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return users.ErrEmailTaken
		}
		return nil
	})
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*users.User, error) {
	user, ok := r.rows.get(id)
	if !ok {
		return nil, users.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) List(_ context.Context, filter users.ListFilter, page pagination.Page) ([]*users.User, error) {
	return r.rows.find(filter.Matches, page), nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	if !r.rows.remove(id) {
		return users.ErrNotFound
	}
	return nil
}

// Clear drops every user
func (r *UserRepository) Clear() {
	r.rows.clear()
}

package users

import (
	"time"
)

// User is an account that owns images, posts, comments and reactions.
// The password is stored as a bcrypt hash and never leaves the service layer.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"fullName" db:"full_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
}

// CreateUserRequest represents the input for creating a new user
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// NewUser is what the service hands to the repository once the password is hashed
type NewUser struct {
	Username     string
	Email        string
	FullName     string
	PasswordHash string
}

// ListFilter narrows List by exact username and/or email. Empty fields match anything.
type ListFilter struct {
	Username string
	Email    string
}

// Matches reports whether u satisfies the filter
func (f ListFilter) Matches(u *User) bool {
	if f.Username != "" && u.Username != f.Username {
		return false
	}
	if f.Email != "" && u.Email != f.Email {
		return false
	}
	return true
}

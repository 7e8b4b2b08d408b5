package users

import (
	"errors"
)

// Sentinel errors for common user operations
var (
	// ErrNotFound is returned when a user lookup finds no matching record
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the username belongs to another user
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when the email belongs to another user
	ErrEmailTaken = errors.New("email already taken")
)

// Client-facing messages that are not derived from Noun
const (
	MsgUsernameRequired = "Username is required"
	MsgInvalidUsername  = "Username must be 3-30 characters of letters, digits, dots or underscores"
	MsgInvalidEmail     = "Invalid email address"
	MsgFullNameRequired = "Full name is required"
	MsgPasswordTooShort = "Password must be at least 6 characters"
	MsgPasswordTooLong  = "Password must be at most 72 characters"
	MsgUsernameInUse    = "Username already in use"
	MsgEmailInUse       = "Email already in use"
)

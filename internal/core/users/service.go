package users

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"regexp"
	"strings"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/result"

	"golang.org/x/crypto/bcrypt"
)

// Noun is used for every user message, including "User not found" in other services
var Noun = result.Noun{Singular: "User", Plural: "Users"}

var usernameRegex = regexp.MustCompile(`^[a-z0-9._]{3,30}$`)

const (
	minPasswordLength = 6
	// bcrypt ignores input past 72 bytes
	maxPasswordLength = 72
)

type userService struct {
	userRepo Repository
	hashCost int
}

// NewUserService creates a new user service
func NewUserService(userRepo Repository) Service {
	return NewUserServiceWithHashCost(userRepo, bcrypt.DefaultCost)
}

// NewUserServiceWithHashCost lets tests trade hash strength for speed
func NewUserServiceWithHashCost(userRepo Repository, cost int) Service {
	return &userService{
		userRepo: userRepo,
		hashCost: cost,
	}
}

// CreateUser validates and normalizes the request, rejects duplicate usernames and
// emails, hashes the password and stores the user
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) result.Result[*User] {
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)

	if msg := validateCreateRequest(req); msg != "" {
		return result.Invalid[*User](msg)
	}

	taken, err := s.userRepo.List(ctx, ListFilter{Username: req.Username}, pagination.New(1, 0))
	if err != nil {
		log.Printf("[USERS] username lookup failed: %v", err)
		return result.Internal[*User](Noun.Failed("create"))
	}
	if len(taken) > 0 {
		return result.Conflict[*User](MsgUsernameInUse)
	}

	taken, err = s.userRepo.List(ctx, ListFilter{Email: req.Email}, pagination.New(1, 0))
	if err != nil {
		log.Printf("[USERS] email lookup failed: %v", err)
		return result.Internal[*User](Noun.Failed("create"))
	}
	if len(taken) > 0 {
		return result.Conflict[*User](MsgEmailInUse)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		log.Printf("[USERS] password hashing failed: %v", err)
		return result.Internal[*User](Noun.Failed("create"))
	}

	// The uniqueness checks above race with concurrent creates; the repository's
	// own constraint is the final word.
	user, err := s.userRepo.Create(ctx, NewUser{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
	})
	switch {
	case errors.Is(err, ErrUsernameTaken):
		return result.Conflict[*User](MsgUsernameInUse)
	case errors.Is(err, ErrEmailTaken):
		return result.Conflict[*User](MsgEmailInUse)
	case err != nil:
		log.Printf("[USERS] create failed: %v", err)
		return result.Internal[*User](Noun.Failed("create"))
	}

	return result.Success(Noun.Created(), user)
}

// GetUserByID retrieves a user by id
func (s *userService) GetUserByID(ctx context.Context, id string) result.Result[*User] {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*User](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[USERS] get %s failed: %v", id, err)
		return result.Internal[*User](Noun.Failed("get"))
	}

	return result.Success(Noun.Found(), user)
}

// GetUsers lists users in creation order
func (s *userService) GetUsers(ctx context.Context, take, skip int) result.Result[[]*User] {
	page := pagination.New(take, skip)
	if err := page.Validate(); err != nil {
		return result.Invalid[[]*User](result.InvalidPagination)
	}

	list, err := s.userRepo.List(ctx, ListFilter{}, page)
	if err != nil {
		log.Printf("[USERS] list failed: %v", err)
		return result.Internal[[]*User](Noun.FailedMany("list"))
	}
	if list == nil {
		list = []*User{}
	}

	return result.Success(Noun.FoundMany(), list)
}

// DeleteUser hard-deletes a user. Content owned by the user is left in place.
func (s *userService) DeleteUser(ctx context.Context, id string) result.Result[*User] {
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*User](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[USERS] delete %s failed: %v", id, err)
		return result.Internal[*User](Noun.Failed("delete"))
	}

	return result.Done[*User](Noun.Deleted())
}

// validateCreateRequest returns the client-facing message for the first problem found
func validateCreateRequest(req CreateUserRequest) string {
	if req.Username == "" {
		return MsgUsernameRequired
	}
	if !usernameRegex.MatchString(req.Username) {
		return MsgInvalidUsername
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return MsgInvalidEmail
	}

	if req.FullName == "" {
		return MsgFullNameRequired
	}
	if len(req.Password) < minPasswordLength {
		return MsgPasswordTooShort
	}
	if len(req.Password) > maxPasswordLength {
		return MsgPasswordTooLong
	}

	return ""
}

package comments

import (
	"context"

	"Postagram/internal/core/lookup"
	"Postagram/internal/core/pagination"
	"Postagram/internal/core/result"
)

// Service defines the business logic interface for comments
type Service interface {
	CreateComment(ctx context.Context, req CreateCommentRequest) result.Result[*Comment]
	GetCommentByID(ctx context.Context, id string) result.Result[*Comment]
	GetComments(ctx context.Context, take, skip int) result.Result[[]*Comment]
	GetCommentsByPostID(ctx context.Context, postID string) result.Result[[]*Comment]
	GetCommentsByUserID(ctx context.Context, userID string) result.Result[[]*Comment]
	UpdateComment(ctx context.Context, id string, req UpdateCommentRequest) result.Result[*Comment]
	DeleteComment(ctx context.Context, id string) result.Result[*Comment]
}

// Repository defines the data access interface for comments
type Repository interface {
	Create(ctx context.Context, req CreateCommentRequest) (*Comment, error)
	GetByID(ctx context.Context, id string) (*Comment, error)
	List(ctx context.Context, page pagination.Page) ([]*Comment, error)
	ListByForeignKey(ctx context.Context, key ForeignKey, id string) ([]*Comment, error)

	// Update replaces the body and refreshes UpdatedAt
	Update(ctx context.Context, id string, req UpdateCommentRequest) (*Comment, error)

	Delete(ctx context.Context, id string) error
}

// Exists resolves id through repo
func Exists(ctx context.Context, repo Repository, id string) (bool, error) {
	return lookup.Exists(ctx, repo.GetByID, id, ErrNotFound)
}

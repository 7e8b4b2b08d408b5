package posts

import (
	"context"

	"Postagram/internal/core/lookup"
	"Postagram/internal/core/pagination"
	"Postagram/internal/core/result"
)

// Service defines the business logic interface for posts
// Write paths check the owner and image first; read paths never validate references.
type Service interface {
	CreatePost(ctx context.Context, req CreatePostRequest) result.Result[*Post]
	GetPostByID(ctx context.Context, id string) result.Result[*Post]
	GetPosts(ctx context.Context, take, skip int) result.Result[[]*Post]
	GetPostsByUserID(ctx context.Context, userID string) result.Result[[]*Post]
	GetPostsByImageID(ctx context.Context, imageID string) result.Result[[]*Post]
	UpdatePost(ctx context.Context, id string, req UpdatePostRequest) result.Result[*Post]
	DeletePost(ctx context.Context, id string) result.Result[*Post]
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create assigns ID and timestamps and stores the post
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)

	// GetByID returns ErrNotFound for unknown ids
	GetByID(ctx context.Context, id string) (*Post, error)

	// List returns posts in creation order, windowed by page
	List(ctx context.Context, page pagination.Page) ([]*Post, error)

	// ListByForeignKey returns every post whose key column equals id, in creation order
	ListByForeignKey(ctx context.Context, key ForeignKey, id string) ([]*Post, error)

	// Update replaces the subtitle and refreshes UpdatedAt
	Update(ctx context.Context, id string, req UpdatePostRequest) (*Post, error)

	// Delete hard-deletes a post. Returns ErrNotFound for unknown ids.
	Delete(ctx context.Context, id string) error
}

// Exists resolves id through repo
func Exists(ctx context.Context, repo Repository, id string) (bool, error) {
	return lookup.Exists(ctx, repo.GetByID, id, ErrNotFound)
}

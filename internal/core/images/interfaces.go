package images

import (
	"context"

	"Postagram/internal/core/lookup"
	"Postagram/internal/core/pagination"
	"Postagram/internal/core/result"
)

// Repository defines the data access interface for images
type Repository interface {
	Create(ctx context.Context, req CreateImageRequest) (*Image, error)
	GetByID(ctx context.Context, id string) (*Image, error)
	List(ctx context.Context, page pagination.Page) ([]*Image, error)
	ListByForeignKey(ctx context.Context, key ForeignKey, id string) ([]*Image, error)
	Delete(ctx context.Context, id string) error
}

// Service defines the business logic interface for images
type Service interface {
	CreateImage(ctx context.Context, req CreateImageRequest) result.Result[*Image]
	GetImageByID(ctx context.Context, id string) result.Result[*Image]
	GetImages(ctx context.Context, take, skip int) result.Result[[]*Image]
	GetImagesByUserID(ctx context.Context, userID string) result.Result[[]*Image]
	DeleteImage(ctx context.Context, id string) result.Result[*Image]
}

// Exists resolves id through repo
func Exists(ctx context.Context, repo Repository, id string) (bool, error) {
	return lookup.Exists(ctx, repo.GetByID, id, ErrNotFound)
}

package memory

import (
	"context"

	"Postagram/internal/core/images"
	"Postagram/internal/core/pagination"
	"Postagram/internal/db"
)

// ImageRepository is the in-memory images.Repository
type ImageRepository struct {
	rows *table[images.Image]
}

func NewImageRepository() *ImageRepository {
	return &ImageRepository{rows: newTable(func(i *images.Image) string { return i.ID })}
}

func (r *ImageRepository) Create(_ context.Context, req images.CreateImageRequest) (*images.Image, error) {
	if err := db.CheckNewImage(req); err != nil {
		return nil, err
	}

	now := db.Now()
	return r.rows.insert(&images.Image{
		ID:        db.NewID(),
		URL:       req.URL,
		UserID:    req.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil)
}

func (r *ImageRepository) GetByID(_ context.Context, id string) (*images.Image, error) {
	image, ok := r.rows.get(id)
	if !ok {
		return nil, images.ErrNotFound
	}
	return image, nil
}

func (r *ImageRepository) List(_ context.Context, page pagination.Page) ([]*images.Image, error) {
	return r.rows.find(nil, page), nil
}

func (r *ImageRepository) ListByForeignKey(_ context.Context, key images.ForeignKey, id string) ([]*images.Image, error) {
	if _, ok := (&images.Image{}).Value(key); !ok {
		return nil, images.ErrInvalidForeignKey
	}
	value := func(i *images.Image) (string, bool) { return i.Value(key) }
	return r.rows.find(foreignKeyMatch(value, id), pagination.All), nil
}

func (r *ImageRepository) Delete(_ context.Context, id string) error {
	if !r.rows.remove(id) {
		return images.ErrNotFound
	}
	return nil
}

func (r *ImageRepository) Clear() {
	r.rows.clear()
}

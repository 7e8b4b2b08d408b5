package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Postagram/internal/core/images"
	"Postagram/internal/core/pagination"
	"Postagram/internal/db"
)

const imageColumns = `id, url, user_id, created_at, updated_at`

type postgresImageRepo struct {
	db *sql.DB
}

// NewImageRepository creates a new PostgreSQL image repository
func NewImageRepository(db *sql.DB) images.Repository {
	return &postgresImageRepo{db: db}
}

func (r *postgresImageRepo) Create(ctx context.Context, req images.CreateImageRequest) (*images.Image, error) {
	if err := db.CheckNewImage(req); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO images (id, url, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING ` + imageColumns

	image, err := scanImage(r.db.QueryRowContext(ctx, query, db.NewID(), req.URL, req.UserID, db.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}
	return image, nil
}

func (r *postgresImageRepo) GetByID(ctx context.Context, id string) (*images.Image, error) {
	if !db.IsID(id) {
		return nil, images.ErrNotFound
	}

	image, err := scanImage(r.db.QueryRowContext(ctx, `SELECT `+imageColumns+` FROM images WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, images.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image by id: %w", err)
	}
	return image, nil
}

func (r *postgresImageRepo) List(ctx context.Context, page pagination.Page) ([]*images.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images ORDER BY seq LIMIT $1 OFFSET $2`

	list, err := queryList(ctx, r.db, scanImage, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return list, nil
}

func (r *postgresImageRepo) ListByForeignKey(ctx context.Context, key images.ForeignKey, id string) ([]*images.Image, error) {
	if _, ok := (&images.Image{}).Value(key); !ok {
		return nil, images.ErrInvalidForeignKey
	}
	if !db.IsID(id) {
		return []*images.Image{}, nil
	}

	// key is one of the package's ForeignKey constants, each a column name
	query := `SELECT ` + imageColumns + ` FROM images WHERE ` + string(key) + ` = $1 ORDER BY seq`

	list, err := queryList(ctx, r.db, scanImage, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list images by %s: %w", key, err)
	}
	return list, nil
}

func (r *postgresImageRepo) Delete(ctx context.Context, id string) error {
	if !db.IsID(id) {
		return images.ErrNotFound
	}
	return deleteByID(ctx, r.db, "images", id, images.ErrNotFound)
}

func scanImage(row scanner) (*images.Image, error) {
	var i images.Image
	if err := row.Scan(&i.ID, &i.URL, &i.UserID, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	i.CreatedAt = i.CreatedAt.UTC()
	i.UpdatedAt = i.UpdatedAt.UTC()
	return &i, nil
}

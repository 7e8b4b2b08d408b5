package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/posts"
	"Postagram/internal/db"
)

const postColumns = `id, subtitle, user_id, image_id, created_at, updated_at`

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	if err := db.CheckNewPost(req); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO posts (id, subtitle, user_id, image_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, db.NewID(), req.Subtitle, req.UserID, req.ImageID, db.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetByID retrieves a post by id
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	if !db.IsID(id) {
		return nil, posts.ErrNotFound
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}
	return post, nil
}

func (r *postgresPostRepo) List(ctx context.Context, page pagination.Page) ([]*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY seq LIMIT $1 OFFSET $2`

	list, err := queryList(ctx, r.db, scanPost, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return list, nil
}

func (r *postgresPostRepo) ListByForeignKey(ctx context.Context, key posts.ForeignKey, id string) ([]*posts.Post, error) {
	if _, ok := (&posts.Post{}).Value(key); !ok {
		return nil, posts.ErrInvalidForeignKey
	}
	if !db.IsID(id) {
		return []*posts.Post{}, nil
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE ` + string(key) + ` = $1 ORDER BY seq`

	list, err := queryList(ctx, r.db, scanPost, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by %s: %w", key, err)
	}
	return list, nil
}

// Update replaces the subtitle. updated_at never moves behind created_at.
func (r *postgresPostRepo) Update(ctx context.Context, id string, req posts.UpdatePostRequest) (*posts.Post, error) {
	if err := db.CheckPostUpdate(req); err != nil {
		return nil, err
	}
	if !db.IsID(id) {
		return nil, posts.ErrNotFound
	}

	query := `
		UPDATE posts
		SET subtitle = $2, updated_at = GREATEST($3, created_at)
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, req.Subtitle, db.Now()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	if !db.IsID(id) {
		return posts.ErrNotFound
	}
	return deleteByID(ctx, r.db, "posts", id, posts.ErrNotFound)
}

func scanPost(row scanner) (*posts.Post, error) {
	var p posts.Post
	if err := row.Scan(&p.ID, &p.Subtitle, &p.UserID, &p.ImageID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

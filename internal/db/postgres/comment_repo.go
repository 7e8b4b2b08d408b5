package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Postagram/internal/core/comments"
	"Postagram/internal/core/pagination"
	"Postagram/internal/db"
)

const commentColumns = `id, body, user_id, post_id, created_at, updated_at`

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

func (r *postgresCommentRepo) Create(ctx context.Context, req comments.CreateCommentRequest) (*comments.Comment, error) {
	if err := db.CheckNewComment(req); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO comments (id, body, user_id, post_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + commentColumns

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, db.NewID(), req.Body, req.UserID, req.PostID, db.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (r *postgresCommentRepo) GetByID(ctx context.Context, id string) (*comments.Comment, error) {
	if !db.IsID(id) {
		return nil, comments.ErrNotFound
	}

	comment, err := scanComment(r.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, comments.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}
	return comment, nil
}

func (r *postgresCommentRepo) List(ctx context.Context, page pagination.Page) ([]*comments.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments ORDER BY seq LIMIT $1 OFFSET $2`

	list, err := queryList(ctx, r.db, scanComment, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return list, nil
}

func (r *postgresCommentRepo) ListByForeignKey(ctx context.Context, key comments.ForeignKey, id string) ([]*comments.Comment, error) {
	if _, ok := (&comments.Comment{}).Value(key); !ok {
		return nil, comments.ErrInvalidForeignKey
	}
	if !db.IsID(id) {
		return []*comments.Comment{}, nil
	}

	query := `SELECT ` + commentColumns + ` FROM comments WHERE ` + string(key) + ` = $1 ORDER BY seq`

	list, err := queryList(ctx, r.db, scanComment, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by %s: %w", key, err)
	}
	return list, nil
}

func (r *postgresCommentRepo) Update(ctx context.Context, id string, req comments.UpdateCommentRequest) (*comments.Comment, error) {
	if err := db.CheckCommentUpdate(req); err != nil {
		return nil, err
	}
	if !db.IsID(id) {
		return nil, comments.ErrNotFound
	}

	query := `
		UPDATE comments
		SET body = $2, updated_at = GREATEST($3, created_at)
		WHERE id = $1
		RETURNING ` + commentColumns

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, id, req.Body, db.Now()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, comments.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (r *postgresCommentRepo) Delete(ctx context.Context, id string) error {
	if !db.IsID(id) {
		return comments.ErrNotFound
	}
	return deleteByID(ctx, r.db, "comments", id, comments.ErrNotFound)
}

func scanComment(row scanner) (*comments.Comment, error) {
	var c comments.Comment
	if err := row.Scan(&c.ID, &c.Body, &c.UserID, &c.PostID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

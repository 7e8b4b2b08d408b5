package memory

import (
	"context"

	"Postagram/internal/core/comments"
	"Postagram/internal/core/pagination"
	"Postagram/internal/db"
)

// CommentRepository is the in-memory comments.Repository
type CommentRepository struct {
	rows *table[comments.Comment]
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{rows: newTable(func(c *comments.Comment) string { return c.ID })}
}

func (r *CommentRepository) Create(_ context.Context, req comments.CreateCommentRequest) (*comments.Comment, error) {
	if err := db.CheckNewComment(req); err != nil {
		return nil, err
	}

	now := db.Now()
	return r.rows.insert(&comments.Comment{
		ID:        db.NewID(),
		Body:      req.Body,
		UserID:    req.UserID,
		PostID:    req.PostID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil)
}

func (r *CommentRepository) GetByID(_ context.Context, id string) (*comments.Comment, error) {
	comment, ok := r.rows.get(id)
	if !ok {
		return nil, comments.ErrNotFound
	}
	return comment, nil
}

func (r *CommentRepository) List(_ context.Context, page pagination.Page) ([]*comments.Comment, error) {
	return r.rows.find(nil, page), nil
}

func (r *CommentRepository) ListByForeignKey(_ context.Context, key comments.ForeignKey, id string) ([]*comments.Comment, error) {
	if _, ok := (&comments.Comment{}).Value(key); !ok {
		return nil, comments.ErrInvalidForeignKey
	}
	value := func(c *comments.Comment) (string, bool) { return c.Value(key) }
	return r.rows.find(foreignKeyMatch(value, id), pagination.All), nil
}

func (r *CommentRepository) Update(_ context.Context, id string, req comments.UpdateCommentRequest) (*comments.Comment, error) {
	if err := db.CheckCommentUpdate(req); err != nil {
		return nil, err
	}

	comment, ok := r.rows.update(id, func(c *comments.Comment) {
		c.Body = req.Body
		c.UpdatedAt = db.Now()
	})
	if !ok {
		return nil, comments.ErrNotFound
	}
	return comment, nil
}

func (r *CommentRepository) Delete(_ context.Context, id string) error {
	if !r.rows.remove(id) {
		return comments.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Clear() {
	r.rows.clear()
}

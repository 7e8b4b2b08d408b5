package memory

import (
	"context"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/posts"
	"Postagram/internal/db"
)

// PostRepository is the in-memory posts.Repository
type PostRepository struct {
	rows *table[posts.Post]
}

func NewPostRepository() *PostRepository {
	return &PostRepository{rows: newTable(func(p *posts.Post) string { return p.ID })}
}

func (r *PostRepository) Create(_ context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	if err := db.CheckNewPost(req); err != nil {
		return nil, err
	}

	now := db.Now()
	return r.rows.insert(&posts.Post{
		ID:        db.NewID(),
		Subtitle:  req.Subtitle,
		UserID:    req.UserID,
		ImageID:   req.ImageID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil)
}

func (r *PostRepository) GetByID(_ context.Context, id string) (*posts.Post, error) {
	post, ok := r.rows.get(id)
	if !ok {
		return nil, posts.ErrNotFound
	}
	return post, nil
}

func (r *PostRepository) List(_ context.Context, page pagination.Page) ([]*posts.Post, error) {
	return r.rows.find(nil, page), nil
}

func (r *PostRepository) ListByForeignKey(_ context.Context, key posts.ForeignKey, id string) ([]*posts.Post, error) {
	if _, ok := (&posts.Post{}).Value(key); !ok {
		return nil, posts.ErrInvalidForeignKey
	}
	value := func(p *posts.Post) (string, bool) { return p.Value(key) }
	return r.rows.find(foreignKeyMatch(value, id), pagination.All), nil
}

func (r *PostRepository) Update(_ context.Context, id string, req posts.UpdatePostRequest) (*posts.Post, error) {
	if err := db.CheckPostUpdate(req); err != nil {
		return nil, err
	}

	post, ok := r.rows.update(id, func(p *posts.Post) {
		p.Subtitle = req.Subtitle
		p.UpdatedAt = db.Now()
	})
	if !ok {
		return nil, posts.ErrNotFound
	}
	return post, nil
}

func (r *PostRepository) Delete(_ context.Context, id string) error {
	if !r.rows.remove(id) {
		return posts.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Clear() {
	r.rows.clear()
}

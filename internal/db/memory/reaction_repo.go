package memory

import (
	"context"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/reactions"
	"Postagram/internal/db"
)

// ReactionRepository is the in-memory reactions.Repository.
// Post and comment reactions live in one table, as they do in postgres.
type ReactionRepository struct {
	rows *table[reactions.Reaction]
}

func NewReactionRepository() *ReactionRepository {
	return &ReactionRepository{rows: newTable(func(r *reactions.Reaction) string { return r.ID })}
}

// Create rejects what the reactions table's constraints would reject
func (r *ReactionRepository) Create(_ context.Context, input reactions.NewReaction) (*reactions.Reaction, error) {
	if err := db.CheckNewReaction(input); err != nil {
		return nil, err
	}

	now := db.Now()
	return r.rows.insert(&reactions.Reaction{
		ID:        db.NewID(),
		Type:      input.Type,
		UserID:    input.UserID,
		PostID:    input.PostID,
		CommentID: input.CommentID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil)
}

func (r *ReactionRepository) GetByID(_ context.Context, id string) (*reactions.Reaction, error) {
	reaction, ok := r.rows.get(id)
	if !ok {
		return nil, reactions.ErrNotFound
	}
	return reaction, nil
}

func (r *ReactionRepository) List(_ context.Context, filter reactions.ListFilter, page pagination.Page) ([]*reactions.Reaction, error) {
	return r.rows.find(filter.Matches, page), nil
}

func (r *ReactionRepository) ListByForeignKey(_ context.Context, key reactions.ForeignKey, id string) ([]*reactions.Reaction, error) {
	if _, ok := (&reactions.Reaction{}).Value(key); !ok {
		return nil, reactions.ErrInvalidForeignKey
	}
	value := func(x *reactions.Reaction) (string, bool) { return x.Value(key) }
	return r.rows.find(foreignKeyMatch(value, id), pagination.All), nil
}

func (r *ReactionRepository) Delete(_ context.Context, id string) error {
	if !r.rows.remove(id) {
		return reactions.ErrNotFound
	}
	return nil
}

func (r *ReactionRepository) Clear() {
	r.rows.clear()
}

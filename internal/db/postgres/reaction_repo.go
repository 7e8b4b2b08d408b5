package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/reactions"
	"Postagram/internal/db"
)

const reactionColumns = `id, type, user_id, post_id, comment_id, created_at, updated_at`

type postgresReactionRepo struct {
	db *sql.DB
}

// NewReactionRepository creates a new PostgreSQL reaction repository.
// Post and comment reactions share the reactions table.
func NewReactionRepository(db *sql.DB) reactions.Repository {
	return &postgresReactionRepo{db: db}
}

// Create inserts a reaction. The table's CHECK constraints back up the
// type and target checks.
func (r *postgresReactionRepo) Create(ctx context.Context, input reactions.NewReaction) (*reactions.Reaction, error) {
	if err := db.CheckNewReaction(input); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO reactions (id, type, user_id, post_id, comment_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING ` + reactionColumns

	reaction, err := scanReaction(r.db.QueryRowContext(ctx, query,
		db.NewID(), string(input.Type), input.UserID, nullable(input.PostID), nullable(input.CommentID), db.Now()))
	if err != nil {
		if constraint, ok := constraintViolation(err, checkViolation); ok {
			switch constraint {
			case "reactions_type_check":
				return nil, reactions.ErrInvalidType
			case "reactions_target_check":
				return nil, reactions.ErrInvalidTarget
			}
		}
		return nil, fmt.Errorf("failed to create reaction: %w", err)
	}

	return reaction, nil
}

func (r *postgresReactionRepo) GetByID(ctx context.Context, id string) (*reactions.Reaction, error) {
	if !db.IsID(id) {
		return nil, reactions.ErrNotFound
	}

	reaction, err := scanReaction(r.db.QueryRowContext(ctx, `SELECT `+reactionColumns+` FROM reactions WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, reactions.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction by id: %w", err)
	}
	return reaction, nil
}

// List returns reactions in creation order, optionally narrowed by type and target kind
func (r *postgresReactionRepo) List(ctx context.Context, filter reactions.ListFilter, page pagination.Page) ([]*reactions.Reaction, error) {
	query := `
		SELECT ` + reactionColumns + `
		FROM reactions
		WHERE ($1::text = '' OR type = $1::text)
		  AND ($2::text = ''
		       OR ($2::text = 'post' AND post_id IS NOT NULL)
		       OR ($2::text = 'comment' AND comment_id IS NOT NULL))
		ORDER BY seq
		LIMIT $3 OFFSET $4`

	list, err := queryList(ctx, r.db, scanReaction, query,
		string(filter.Type), string(filter.Target), page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	return list, nil
}

func (r *postgresReactionRepo) ListByForeignKey(ctx context.Context, key reactions.ForeignKey, id string) ([]*reactions.Reaction, error) {
	if _, ok := (&reactions.Reaction{}).Value(key); !ok {
		return nil, reactions.ErrInvalidForeignKey
	}
	if !db.IsID(id) {
		return []*reactions.Reaction{}, nil
	}

	query := `SELECT ` + reactionColumns + ` FROM reactions WHERE ` + string(key) + ` = $1 ORDER BY seq`

	list, err := queryList(ctx, r.db, scanReaction, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions by %s: %w", key, err)
	}
	return list, nil
}

func (r *postgresReactionRepo) Delete(ctx context.Context, id string) error {
	if !db.IsID(id) {
		return reactions.ErrNotFound
	}
	return deleteByID(ctx, r.db, "reactions", id, reactions.ErrNotFound)
}

func scanReaction(row scanner) (*reactions.Reaction, error) {
	var (
		x                 reactions.Reaction
		typ               string
		postID, commentID sql.NullString
	)
	if err := row.Scan(&x.ID, &typ, &x.UserID, &postID, &commentID, &x.CreatedAt, &x.UpdatedAt); err != nil {
		return nil, err
	}
	x.Type = reactions.Type(typ)
	x.PostID = postID.String
	x.CommentID = commentID.String
	x.CreatedAt = x.CreatedAt.UTC()
	x.UpdatedAt = x.UpdatedAt.UTC()
	return &x, nil
}

package reactions

import (
	"context"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/result"
)

// Repository defines the data access interface for reactions.
// Post and comment reactions share one store; ListFilter.Target separates them.
type Repository interface {
	// Create assigns ID and timestamps and stores the reaction.
	// Returns ErrInvalidType or ErrInvalidTarget when input.Validate would.
	Create(ctx context.Context, input NewReaction) (*Reaction, error)

	// GetByID returns ErrNotFound for unknown ids
	GetByID(ctx context.Context, id string) (*Reaction, error)

	// List returns reactions matching filter in creation order, windowed by page
	List(ctx context.Context, filter ListFilter, page pagination.Page) ([]*Reaction, error)

	// ListByForeignKey returns every reaction whose key column equals id, in creation order
	ListByForeignKey(ctx context.Context, key ForeignKey, id string) ([]*Reaction, error)

	// Delete hard-deletes a reaction. Returns ErrNotFound for unknown ids.
	Delete(ctx context.Context, id string) error
}

// Service defines the business logic for the reactions of one target kind.
// A post reaction service never returns or deletes comment reactions and vice versa.
type Service interface {
	CreateReaction(ctx context.Context, req CreateReactionRequest) result.Result[*Reaction]
	GetReactionByID(ctx context.Context, id string) result.Result[*Reaction]

	// GetReactions lists reactions, optionally only those of reactionType.
	// An empty reactionType matches every type.
	GetReactions(ctx context.Context, reactionType Type, take, skip int) result.Result[[]*Reaction]

	// GetReactionsByTargetID lists the reactions on one post (or comment)
	GetReactionsByTargetID(ctx context.Context, targetID string) result.Result[[]*Reaction]

	GetReactionsByUserID(ctx context.Context, userID string) result.Result[[]*Reaction]
	DeleteReaction(ctx context.Context, id string) result.Result[*Reaction]
}

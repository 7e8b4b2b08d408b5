package reactions

import (
	"context"
	"errors"
	"log"

	"Postagram/internal/core/comments"
	"Postagram/internal/core/pagination"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/result"
	"Postagram/internal/core/users"
)

// reactionService serves the reactions of one target kind.
//
// CreateReaction checks the user and the target, then inserts. Those steps are
// not atomic: a user or target deleted between the check and the insert leaves
// a reaction pointing at nothing.
type reactionService struct {
	kind         targetKind
	reactionRepo Repository
	userRepo     users.Repository
	targetExists TargetExistsFunc
}

// NewService creates a reaction service for target. It panics on an unknown target.
func NewService(target Target, reactionRepo Repository, userRepo users.Repository, targetExists TargetExistsFunc) Service {
	kind, err := kindOf(target)
	if err != nil {
		panic(err)
	}
	return &reactionService{
		kind:         kind,
		reactionRepo: reactionRepo,
		userRepo:     userRepo,
		targetExists: targetExists,
	}
}

// NewPostReactionService creates the service behind "Post reaction" messages
func NewPostReactionService(reactionRepo Repository, userRepo users.Repository, postRepo posts.Repository) Service {
	return NewService(TargetPost, reactionRepo, userRepo, PostExists(postRepo))
}

// NewCommentReactionService creates the service behind "Comment reaction" messages
func NewCommentReactionService(reactionRepo Repository, userRepo users.Repository, commentRepo comments.Repository) Service {
	return NewService(TargetComment, reactionRepo, userRepo, CommentExists(commentRepo))
}

// CreateReaction checks the type, then the user, then the target, and stores the reaction.
// A request where both user and target are unknown reports the user.
func (s *reactionService) CreateReaction(ctx context.Context, req CreateReactionRequest) result.Result[*Reaction] {
	if !req.Type.Valid() {
		return result.Invalid[*Reaction](MsgInvalidType)
	}

	exists, err := users.Exists(ctx, s.userRepo, req.UserID)
	if err != nil {
		log.Printf("%s user lookup failed: %v", s.kind.logTag, err)
		return result.Internal[*Reaction](s.kind.noun.Failed("create"))
	}
	if !exists {
		return result.NotFound[*Reaction](users.Noun.NotFound())
	}

	exists, err = s.targetExists(ctx, req.TargetID)
	if err != nil {
		log.Printf("%s %s lookup failed: %v", s.kind.logTag, s.kind.target, err)
		return result.Internal[*Reaction](s.kind.noun.Failed("create"))
	}
	if !exists {
		return result.NotFound[*Reaction](s.kind.targetNoun.NotFound())
	}

	reaction, err := s.reactionRepo.Create(ctx, s.kind.newReaction(req))
	switch {
	case errors.Is(err, ErrInvalidType):
		return result.Invalid[*Reaction](MsgInvalidType)
	case err != nil:
		log.Printf("%s create failed: %v", s.kind.logTag, err)
		return result.Internal[*Reaction](s.kind.noun.Failed("create"))
	}

	return result.Success(s.kind.noun.Created(), reaction)
}

// GetReactionByID retrieves a reaction. A reaction of the other target kind is not found.
func (s *reactionService) GetReactionByID(ctx context.Context, id string) result.Result[*Reaction] {
	reaction, err := s.get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Reaction](s.kind.noun.NotFound())
	}
	if err != nil {
		log.Printf("%s get %s failed: %v", s.kind.logTag, id, err)
		return result.Internal[*Reaction](s.kind.noun.Failed("get"))
	}

	return result.Success(s.kind.noun.Found(), reaction)
}

// GetReactions lists reactions in creation order. Empty results are still a success.
func (s *reactionService) GetReactions(ctx context.Context, reactionType Type, take, skip int) result.Result[[]*Reaction] {
	if reactionType != "" && !reactionType.Valid() {
		return result.Invalid[[]*Reaction](MsgInvalidType)
	}

	page := pagination.New(take, skip)
	if err := page.Validate(); err != nil {
		return result.Invalid[[]*Reaction](result.InvalidPagination)
	}

	list, err := s.reactionRepo.List(ctx, ListFilter{Type: reactionType, Target: s.kind.target}, page)
	if err != nil {
		log.Printf("%s list failed: %v", s.kind.logTag, err)
		return result.Internal[[]*Reaction](s.kind.noun.FailedMany("list"))
	}

	return result.Success(s.kind.noun.FoundMany(), nonNil(list))
}

// GetReactionsByTargetID does not check that the target exists; an unknown id yields []
func (s *reactionService) GetReactionsByTargetID(ctx context.Context, targetID string) result.Result[[]*Reaction] {
	list, err := s.reactionRepo.ListByForeignKey(ctx, s.kind.key, targetID)
	if err != nil {
		log.Printf("%s list by %s %s failed: %v", s.kind.logTag, s.kind.target, targetID, err)
		return result.Internal[[]*Reaction](s.kind.noun.FailedMany("list"))
	}

	return result.Success(s.kind.noun.FoundMany(), nonNil(list))
}

// GetReactionsByUserID does not check that the user exists; an unknown id yields []
func (s *reactionService) GetReactionsByUserID(ctx context.Context, userID string) result.Result[[]*Reaction] {
	list, err := s.reactionRepo.ListByForeignKey(ctx, ByUser, userID)
	if err != nil {
		log.Printf("%s list by user %s failed: %v", s.kind.logTag, userID, err)
		return result.Internal[[]*Reaction](s.kind.noun.FailedMany("list"))
	}

	own := make([]*Reaction, 0, len(list))
	for _, r := range list {
		if r.Target() == s.kind.target {
			own = append(own, r)
		}
	}

	return result.Success(s.kind.noun.FoundMany(), own)
}

// DeleteReaction hard-deletes a reaction of this service's target kind
func (s *reactionService) DeleteReaction(ctx context.Context, id string) result.Result[*Reaction] {
	_, err := s.get(ctx, id)
	if err == nil {
		err = s.reactionRepo.Delete(ctx, id)
	}
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Reaction](s.kind.noun.NotFound())
	}
	if err != nil {
		log.Printf("%s delete %s failed: %v", s.kind.logTag, id, err)
		return result.Internal[*Reaction](s.kind.noun.Failed("delete"))
	}

	return result.Done[*Reaction](s.kind.noun.Deleted())
}

// get hides reactions that belong to the other target kind
func (s *reactionService) get(ctx context.Context, id string) (*Reaction, error) {
	reaction, err := s.reactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reaction.Target() != s.kind.target {
		return nil, ErrNotFound
	}
	return reaction, nil
}

func nonNil(list []*Reaction) []*Reaction {
	if list == nil {
		return []*Reaction{}
	}
	return list
}

package reactions

import (
	"context"
	"fmt"

	"Postagram/internal/core/comments"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/result"
)

// TargetExistsFunc reports whether the post or comment with the given id exists
type TargetExistsFunc func(ctx context.Context, id string) (bool, error)

// PostExists checks targets against the post repository
func PostExists(repo posts.Repository) TargetExistsFunc {
	return func(ctx context.Context, id string) (bool, error) {
		return posts.Exists(ctx, repo, id)
	}
}

// CommentExists checks targets against the comment repository
func CommentExists(repo comments.Repository) TargetExistsFunc {
	return func(ctx context.Context, id string) (bool, error) {
		return comments.Exists(ctx, repo, id)
	}
}

// targetKind carries everything that differs between post and comment reactions
type targetKind struct {
	target     Target
	key        ForeignKey
	noun       result.Noun // "Post reaction"
	targetNoun result.Noun // "Post", for "Post not found"
	logTag     string
}

var targetKinds = map[Target]targetKind{
	TargetPost: {
		target:     TargetPost,
		key:        ByPost,
		noun:       result.Noun{Singular: "Post reaction", Plural: "Post reactions"},
		targetNoun: posts.Noun,
		logTag:     "[POST-REACTIONS]",
	},
	TargetComment: {
		target:     TargetComment,
		key:        ByComment,
		noun:       result.Noun{Singular: "Comment reaction", Plural: "Comment reactions"},
		targetNoun: comments.Noun,
		logTag:     "[COMMENT-REACTIONS]",
	},
}

func kindOf(target Target) (targetKind, error) {
	kind, ok := targetKinds[target]
	if !ok {
		return targetKind{}, fmt.Errorf("unknown reaction target %q", target)
	}
	return kind, nil
}

// newReaction places the target id in the column matching the kind
func (k targetKind) newReaction(req CreateReactionRequest) NewReaction {
	input := NewReaction{Type: req.Type, UserID: req.UserID}
	if k.target == TargetPost {
		input.PostID = req.TargetID
	} else {
		input.CommentID = req.TargetID
	}
	return input
}

package reactions

import (
	"time"
)

// Type is the closed set of reactions a user can leave
type Type string

const (
	Like    Type = "like"
	Dislike Type = "dislike"
)

// Valid reports whether t is one of the known reaction types
func (t Type) Valid() bool {
	return t == Like || t == Dislike
}

// Target is the kind of entity a reaction points at
type Target string

const (
	TargetPost    Target = "post"
	TargetComment Target = "comment"
)

// Reaction is a like or dislike left by a user on exactly one post or comment.
// Reactions are immutable once created.
type Reaction struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	Type      Type      `json:"type" db:"type"`
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId,omitempty" db:"post_id"`
	CommentID string    `json:"commentId,omitempty" db:"comment_id"`
}

// Target returns which kind of entity the reaction is attached to
func (r *Reaction) Target() Target {
	if r.PostID != "" {
		return TargetPost
	}
	return TargetComment
}

// TargetID returns the id of the post or comment the reaction is attached to
func (r *Reaction) TargetID() string {
	if r.PostID != "" {
		return r.PostID
	}
	return r.CommentID
}

// CreateReactionRequest is the service input. TargetID is a post id or a
// comment id depending on which service receives it.
type CreateReactionRequest struct {
	Type     Type   `json:"type"`
	UserID   string `json:"userId"`
	TargetID string `json:"targetId"`
}

// NewReaction is the repository input. Exactly one of PostID and CommentID is set.
type NewReaction struct {
	Type      Type
	UserID    string
	PostID    string
	CommentID string
}

// Validate checks what the storage layer enforces with constraints
func (n NewReaction) Validate() error {
	if !n.Type.Valid() {
		return ErrInvalidType
	}
	if (n.PostID == "") == (n.CommentID == "") {
		return ErrInvalidTarget
	}
	return nil
}

// ListFilter narrows List. Empty fields match anything.
type ListFilter struct {
	Type   Type
	Target Target
}

// Matches reports whether r satisfies the filter
func (f ListFilter) Matches(r *Reaction) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Target != "" && r.Target() != f.Target {
		return false
	}
	return true
}

// ForeignKey names a reference column that ListByForeignKey can match on
type ForeignKey string

const (
	ByUser    ForeignKey = "user_id"
	ByPost    ForeignKey = "post_id"
	ByComment ForeignKey = "comment_id"
)

// Value returns the reaction's value for key, and false for unknown keys
func (r *Reaction) Value(key ForeignKey) (string, bool) {
	switch key {
	case ByUser:
		return r.UserID, true
	case ByPost:
		return r.PostID, true
	case ByComment:
		return r.CommentID, true
	default:
		return "", false
	}
}

package comments

import (
	"time"
)

// Comment is a user's text reply on a post
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	Body      string    `json:"body" db:"body"`
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
}

// CreateCommentRequest represents input for creating a new comment
type CreateCommentRequest struct {
	Body   string `json:"body"`
	UserID string `json:"userId"`
	PostID string `json:"postId"`
}

// UpdateCommentRequest carries the mutable fields of a comment
type UpdateCommentRequest struct {
	Body string `json:"body"`
}

// ForeignKey names a reference column that ListByForeignKey can match on
type ForeignKey string

const (
	ByUser ForeignKey = "user_id"
	ByPost ForeignKey = "post_id"
)

// Value returns the comment's value for key, and false for unknown keys
func (c *Comment) Value(key ForeignKey) (string, bool) {
	switch key {
	case ByUser:
		return c.UserID, true
	case ByPost:
		return c.PostID, true
	default:
		return "", false
	}
}

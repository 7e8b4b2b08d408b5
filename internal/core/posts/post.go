package posts

import (
	"time"
)

// Post is a user's publication of an image with a subtitle
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	Subtitle  string    `json:"subtitle" db:"subtitle"`
	UserID    string    `json:"userId" db:"user_id"`
	ImageID   string    `json:"imageId" db:"image_id"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Subtitle string `json:"subtitle"`
	UserID   string `json:"userId"`
	ImageID  string `json:"imageId"`
}

// UpdatePostRequest carries the mutable fields of a post
type UpdatePostRequest struct {
	Subtitle string `json:"subtitle"`
}

// ForeignKey names a reference column that ListByForeignKey can match on
type ForeignKey string

const (
	ByUser  ForeignKey = "user_id"
	ByImage ForeignKey = "image_id"
)

// Value returns the post's value for key, and false for unknown keys
func (p *Post) Value(key ForeignKey) (string, bool) {
	switch key {
	case ByUser:
		return p.UserID, true
	case ByImage:
		return p.ImageID, true
	default:
		return "", false
	}
}

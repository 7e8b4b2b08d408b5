package images

import (
	"time"
)

// Image is an uploaded picture's public URL, owned by a user and referenced by posts
type Image struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	UserID    string    `json:"userId" db:"user_id"`
}

// CreateImageRequest represents the input for creating a new image
type CreateImageRequest struct {
	URL    string `json:"url"`
	UserID string `json:"userId"`
}

// ForeignKey names a reference column that ListByForeignKey can match on
type ForeignKey string

const (
	ByUser ForeignKey = "user_id"
)

// Value returns the image's value for key, and false for unknown keys
func (i *Image) Value(key ForeignKey) (string, bool) {
	switch key {
	case ByUser:
		return i.UserID, true
	default:
		return "", false
	}
}

package posts

import (
	"errors"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post is not found by id
	ErrNotFound = errors.New("post not found")

	// ErrInvalidForeignKey indicates ListByForeignKey was asked for a column posts don't have
	ErrInvalidForeignKey = errors.New("invalid post foreign key")

	// ErrInvalidReference indicates a user or image id that is not a well-formed id
	ErrInvalidReference = errors.New("invalid post reference")

	// ErrSubtitleTooLong indicates a subtitle over MaxSubtitleLength runes
	ErrSubtitleTooLong = errors.New("post subtitle too long")
)

// MaxSubtitleLength caps the subtitle, counted in runes
const MaxSubtitleLength = 2200

const (
	MsgSubtitleTooLong = "Subtitle must be at most 2200 characters"
)

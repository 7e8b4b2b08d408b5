package images

import "errors"

var (
	// ErrNotFound indicates the requested image doesn't exist
	ErrNotFound = errors.New("image not found")

	// ErrInvalidForeignKey indicates ListByForeignKey was asked for a column images don't have
	ErrInvalidForeignKey = errors.New("invalid image foreign key")

	// ErrInvalidReference indicates an owner id that is not a well-formed id
	ErrInvalidReference = errors.New("invalid image reference")
)

const (
	MsgInvalidURL = "Image url must be an absolute http(s) URL"
)

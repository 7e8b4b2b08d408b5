package comments

import "errors"

var (
	// ErrNotFound indicates the requested comment doesn't exist
	ErrNotFound = errors.New("comment not found")

	// ErrInvalidForeignKey indicates ListByForeignKey was asked for a column comments don't have
	ErrInvalidForeignKey = errors.New("invalid comment foreign key")

	// ErrInvalidReference indicates a user or post id that is not a well-formed id
	ErrInvalidReference = errors.New("invalid comment reference")

	// ErrInvalidBody indicates an empty body or one over MaxBodyLength runes
	ErrInvalidBody = errors.New("comment body must be 1 to 1000 characters")
)

// MaxBodyLength caps the comment body, counted in runes
const MaxBodyLength = 1000

const (
	MsgBodyRequired = "Comment body is required"
	MsgBodyTooLong  = "Comment body must be at most 1000 characters"
)

package reactions

import "errors"

var (
	// ErrNotFound indicates the requested reaction doesn't exist
	ErrNotFound = errors.New("reaction not found")

	// ErrInvalidType indicates the reaction type is not "like" or "dislike"
	ErrInvalidType = errors.New("invalid reaction type: must be 'like' or 'dislike'")

	// ErrInvalidTarget indicates a reaction with neither or both of post and comment set
	ErrInvalidTarget = errors.New("reaction must target exactly one post or comment")

	// ErrInvalidForeignKey indicates ListByForeignKey was asked for a column reactions don't have
	ErrInvalidForeignKey = errors.New("invalid reaction foreign key")

	// ErrInvalidReference indicates a user or target id that is not a well-formed id
	ErrInvalidReference = errors.New("invalid reaction reference")
)

const (
	MsgInvalidType = "Invalid reaction type"
)

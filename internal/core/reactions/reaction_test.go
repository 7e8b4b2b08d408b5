package reactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReaction_Validate(t *testing.T) {
	tests := []struct {
		name  string
		input NewReaction
		err   error
	}{
		{"post like", NewReaction{Type: Like, UserID: "u", PostID: "p"}, nil},
		{"comment dislike", NewReaction{Type: Dislike, UserID: "u", CommentID: "c"}, nil},
		{"unknown type", NewReaction{Type: "meh", UserID: "u", PostID: "p"}, ErrInvalidType},
		{"no target", NewReaction{Type: Like, UserID: "u"}, ErrInvalidTarget},
		{"two targets", NewReaction{Type: Like, UserID: "u", PostID: "p", CommentID: "c"}, ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestReaction_Target(t *testing.T) {
	onPost := &Reaction{PostID: "p"}
	onComment := &Reaction{CommentID: "c"}

	assert.Equal(t, TargetPost, onPost.Target())
	assert.Equal(t, "p", onPost.TargetID())
	assert.Equal(t, TargetComment, onComment.Target())
	assert.Equal(t, "c", onComment.TargetID())

	assert.True(t, ListFilter{Target: TargetPost, Type: Like}.Matches(&Reaction{Type: Like, PostID: "p"}))
	assert.False(t, ListFilter{Target: TargetPost}.Matches(onComment))
	assert.False(t, ListFilter{Type: Dislike}.Matches(&Reaction{Type: Like, PostID: "p"}))
}

func TestTargetKind_NewReaction(t *testing.T) {
	req := CreateReactionRequest{Type: Like, UserID: "u", TargetID: "t"}

	post := targetKinds[TargetPost].newReaction(req)
	assert.Equal(t, NewReaction{Type: Like, UserID: "u", PostID: "t"}, post)

	comment := targetKinds[TargetComment].newReaction(req)
	assert.Equal(t, NewReaction{Type: Like, UserID: "u", CommentID: "t"}, comment)

	_, err := kindOf("image")
	assert.Error(t, err)
}

package postgres

import (
	"context"
	"testing"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/reactions"
	"Postagram/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionRepo_CheckConstraints(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewReactionRepository(conn)
	ctx := context.Background()
	userID, postID, commentID := db.NewID(), db.NewID(), db.NewID()

	_, err := repo.Create(ctx, reactions.NewReaction{Type: "love", UserID: userID, PostID: postID})
	assert.ErrorIs(t, err, reactions.ErrInvalidType)

	_, err = repo.Create(ctx, reactions.NewReaction{Type: reactions.Like, UserID: userID})
	assert.ErrorIs(t, err, reactions.ErrInvalidTarget)

	_, err = repo.Create(ctx, reactions.NewReaction{Type: reactions.Like, UserID: userID, PostID: postID, CommentID: commentID})
	assert.ErrorIs(t, err, reactions.ErrInvalidTarget)

	created, err := repo.Create(ctx, reactions.NewReaction{Type: reactions.Dislike, UserID: userID, CommentID: commentID})
	require.NoError(t, err)
	assert.Equal(t, commentID, created.CommentID)
	assert.Empty(t, created.PostID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestReactionRepo_ListFilters(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewReactionRepository(conn)
	ctx := context.Background()
	userID, postID, commentID := db.NewID(), db.NewID(), db.NewID()

	like, err := repo.Create(ctx, reactions.NewReaction{Type: reactions.Like, UserID: userID, PostID: postID})
	require.NoError(t, err)
	dislike, err := repo.Create(ctx, reactions.NewReaction{Type: reactions.Dislike, UserID: userID, PostID: postID})
	require.NoError(t, err)
	onComment, err := repo.Create(ctx, reactions.NewReaction{Type: reactions.Like, UserID: userID, CommentID: commentID})
	require.NoError(t, err)

	ids := func(list []*reactions.Reaction) []string {
		out := make([]string, 0, len(list))
		for _, r := range list {
			out = append(out, r.ID)
		}
		return out
	}

	postLikes, err := repo.List(ctx, reactions.ListFilter{Type: reactions.Like, Target: reactions.TargetPost}, pagination.All)
	require.NoError(t, err)
	assert.Equal(t, []string{like.ID}, ids(postLikes))

	comments, err := repo.List(ctx, reactions.ListFilter{Target: reactions.TargetComment}, pagination.All)
	require.NoError(t, err)
	assert.Equal(t, []string{onComment.ID}, ids(comments))

	second, err := repo.List(ctx, reactions.ListFilter{}, pagination.New(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{dislike.ID}, ids(second))

	byUser, err := repo.ListByForeignKey(ctx, reactions.ByUser, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{like.ID, dislike.ID, onComment.ID}, ids(byUser))

	_, err = repo.ListByForeignKey(ctx, reactions.ForeignKey("type"), "like")
	assert.ErrorIs(t, err, reactions.ErrInvalidForeignKey)

	unknown, err := repo.ListByForeignKey(ctx, reactions.ByPost, "invalid-post-id")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

package reactions_test

import (
	"context"
	"errors"
	"testing"

	"Postagram/internal/core/comments"
	"Postagram/internal/core/pagination"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/reactions"
	"Postagram/internal/core/result"
	"Postagram/internal/core/users"
	"Postagram/internal/db"
	"Postagram/internal/db/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	posts     reactions.Service
	comments  reactions.Service
	repo      *memory.ReactionRepository
	userID    string
	postID    string
	commentID string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	userRepo := memory.NewUserRepository()
	postRepo := memory.NewPostRepository()
	commentRepo := memory.NewCommentRepository()
	reactionRepo := memory.NewReactionRepository()

	user, err := userRepo.Create(ctx, users.NewUser{Username: "test", Email: "test@mail.com", FullName: "User Test", PasswordHash: "x"})
	require.NoError(t, err)
	post, err := postRepo.Create(ctx, posts.CreatePostRequest{Subtitle: "Post Test", UserID: user.ID, ImageID: db.NewID()})
	require.NoError(t, err)
	comment, err := commentRepo.Create(ctx, comments.CreateCommentRequest{Body: "Comment Test", UserID: user.ID, PostID: post.ID})
	require.NoError(t, err)

	return &fixture{
		posts:     reactions.NewPostReactionService(reactionRepo, userRepo, postRepo),
		comments:  reactions.NewCommentReactionService(reactionRepo, userRepo, commentRepo),
		repo:      reactionRepo,
		userID:    user.ID,
		postID:    post.ID,
		commentID: comment.ID,
	}
}

func TestCreateReaction_OnComment(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	res := f.comments.CreateReaction(ctx, reactions.CreateReactionRequest{Type: reactions.Dislike, UserID: f.userID, TargetID: f.commentID})

	require.True(t, res.OK)
	assert.Equal(t, "Comment reaction created successfully", res.Message)
	assert.Equal(t, f.commentID, res.Payload.CommentID)
	assert.Empty(t, res.Payload.PostID)
	assert.Equal(t, reactions.TargetComment, res.Payload.Target())

	missing := f.comments.CreateReaction(ctx, reactions.CreateReactionRequest{Type: reactions.Like, UserID: f.userID, TargetID: f.postID})
	assert.False(t, missing.OK)
	assert.Equal(t, "Comment not found", missing.Message)
}

func TestCreateReaction_InvalidType(t *testing.T) {
	f := setup(t)

	for _, typ := range []reactions.Type{"", "love", "LIKE"} {
		res := f.posts.CreateReaction(context.Background(), reactions.CreateReactionRequest{Type: typ, UserID: f.userID, TargetID: f.postID})

		assert.False(t, res.OK, typ)
		assert.Equal(t, reactions.MsgInvalidType, res.Message)
		assert.Equal(t, result.ReasonInvalid, res.Reason())
	}

	all, err := f.repo.List(context.Background(), reactions.ListFilter{}, pagination.All)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestServicesAreScopedToTheirTarget(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	onPost := f.posts.CreateReaction(ctx, reactions.CreateReactionRequest{Type: reactions.Like, UserID: f.userID, TargetID: f.postID})
	onComment := f.comments.CreateReaction(ctx, reactions.CreateReactionRequest{Type: reactions.Like, UserID: f.userID, TargetID: f.commentID})
	require.True(t, onPost.OK)
	require.True(t, onComment.OK)

	list := f.posts.GetReactions(ctx, "", 0, 0)
	require.True(t, list.OK)
	assert.Equal(t, []*reactions.Reaction{onPost.Payload}, list.Payload)

	byUser := f.comments.GetReactionsByUserID(ctx, f.userID)
	require.True(t, byUser.OK)
	assert.Equal(t, "Comment reactions found successfully", byUser.Message)
	assert.Equal(t, []*reactions.Reaction{onComment.Payload}, byUser.Payload)

	wrongKind := f.posts.GetReactionByID(ctx, onComment.Payload.ID)
	assert.False(t, wrongKind.OK)
	assert.Equal(t, "Post reaction not found", wrongKind.Message)

	notDeleted := f.posts.DeleteReaction(ctx, onComment.Payload.ID)
	assert.False(t, notDeleted.OK)
	assert.Equal(t, "Post reaction not found", notDeleted.Message)

	still := f.comments.GetReactionByID(ctx, onComment.Payload.ID)
	assert.True(t, still.OK)
	assert.Equal(t, "Comment reaction found successfully", still.Message)
}

func TestGetReactions_InvalidInput(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	badType := f.posts.GetReactions(ctx, "love", 0, 0)
	assert.False(t, badType.OK)
	assert.Equal(t, reactions.MsgInvalidType, badType.Message)

	badPage := f.posts.GetReactions(ctx, reactions.Like, 0, -1)
	assert.False(t, badPage.OK)
	assert.Equal(t, result.InvalidPagination, badPage.Message)
	assert.Equal(t, result.ReasonInvalid, badPage.Reason())
}

func TestNewService_UnknownTarget(t *testing.T) {
	assert.Panics(t, func() {
		reactions.NewService("image", memory.NewReactionRepository(), memory.NewUserRepository(), nil)
	})
}

// failingReactionRepository fails the way an unreachable database would
type failingReactionRepository struct {
	reactions.Repository
}

var errUnreachable = errors.New("pq: connection refused")

func (failingReactionRepository) GetByID(context.Context, string) (*reactions.Reaction, error) {
	return nil, errUnreachable
}

func (failingReactionRepository) ListByForeignKey(context.Context, reactions.ForeignKey, string) ([]*reactions.Reaction, error) {
	return nil, errUnreachable
}

func TestStorageFailureIsNormalized(t *testing.T) {
	userRepo := memory.NewUserRepository()
	service := reactions.NewService(reactions.TargetPost, failingReactionRepository{}, userRepo,
		func(context.Context, string) (bool, error) { return true, nil })
	ctx := context.Background()

	get := service.GetReactionByID(ctx, "any")
	assert.False(t, get.OK)
	assert.Equal(t, "Failed to get post reaction", get.Message)
	assert.Equal(t, result.ReasonInternal, get.Reason())

	del := service.DeleteReaction(ctx, "any")
	assert.False(t, del.OK)
	assert.Equal(t, "Failed to delete post reaction", del.Message)

	byPost := service.GetReactionsByTargetID(ctx, "any")
	assert.False(t, byPost.OK)
	assert.Equal(t, "Failed to list post reactions", byPost.Message)
	assert.NotContains(t, byPost.Message, "pq")
}

func TestCreateReaction_TargetLookupFailure(t *testing.T) {
	ctx := context.Background()
	userRepo := memory.NewUserRepository()
	user, err := userRepo.Create(ctx, users.NewUser{Username: "test", Email: "test@mail.com"})
	require.NoError(t, err)

	service := reactions.NewService(reactions.TargetPost, memory.NewReactionRepository(), userRepo,
		func(context.Context, string) (bool, error) { return false, errUnreachable })

	res := service.CreateReaction(ctx, reactions.CreateReactionRequest{Type: reactions.Like, UserID: user.ID, TargetID: "p"})
	assert.False(t, res.OK)
	assert.Equal(t, "Failed to create post reaction", res.Message)
}

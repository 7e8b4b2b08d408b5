package comments

import (
	"context"
	"errors"
	"testing"
	"time"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/result"
	"Postagram/internal/core/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repositories for testing
type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id string) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepo) List(ctx context.Context, page pagination.Page) ([]*Comment, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *mockCommentRepo) ListByForeignKey(ctx context.Context, key ForeignKey, id string) ([]*Comment, error) {
	args := m.Called(ctx, key, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *mockCommentRepo) Update(ctx context.Context, id string, req UpdateCommentRequest) (*Comment, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// stubUserRepo and stubPostRepo only answer GetByID; the service never calls anything else on them
type stubUserRepo struct {
	users.Repository
	known map[string]bool
	err   error
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*users.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !s.known[id] {
		return nil, users.ErrNotFound
	}
	return &users.User{ID: id}, nil
}

type stubPostRepo struct {
	posts.Repository
	known map[string]bool
}

func (s *stubPostRepo) GetByID(_ context.Context, id string) (*posts.Post, error) {
	if !s.known[id] {
		return nil, posts.ErrNotFound
	}
	return &posts.Post{ID: id}, nil
}

func newTestService(commentRepo *mockCommentRepo) Service {
	return NewCommentService(
		commentRepo,
		&stubUserRepo{known: map[string]bool{"user-1": true}},
		&stubPostRepo{known: map[string]bool{"post-1": true}},
	)
}

func TestCreateComment_Success(t *testing.T) {
	repo := new(mockCommentRepo)
	service := newTestService(repo)

	now := time.Now().UTC()
	req := CreateCommentRequest{Body: "Nice shot", UserID: "user-1", PostID: "post-1"}
	stored := &Comment{ID: "comment-1", Body: "Nice shot", UserID: "user-1", PostID: "post-1", CreatedAt: now, UpdatedAt: now}
	repo.On("Create", mock.Anything, req).Return(stored, nil)

	res := service.CreateComment(context.Background(), CreateCommentRequest{Body: "  Nice shot ", UserID: "user-1", PostID: "post-1"})

	require.True(t, res.OK)
	assert.Equal(t, "Comment created successfully", res.Message)
	assert.Equal(t, stored, res.Payload)
	repo.AssertExpectations(t)
}

func TestCreateComment_Failures(t *testing.T) {
	tests := []struct {
		name     string
		req      CreateCommentRequest
		expected string
		reason   result.Reason
	}{
		{
			name:     "empty body",
			req:      CreateCommentRequest{Body: "   ", UserID: "user-1", PostID: "post-1"},
			expected: MsgBodyRequired,
			reason:   result.ReasonInvalid,
		},
		{
			name:     "user and post missing reports user",
			req:      CreateCommentRequest{Body: "hi", UserID: "invalid-user-id", PostID: "invalid-post-id"},
			expected: "User not found",
			reason:   result.ReasonNotFound,
		},
		{
			name:     "post missing",
			req:      CreateCommentRequest{Body: "hi", UserID: "user-1", PostID: "invalid-post-id"},
			expected: "Post not found",
			reason:   result.ReasonNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockCommentRepo)
			service := newTestService(repo)

			res := service.CreateComment(context.Background(), tt.req)

			assert.False(t, res.OK)
			assert.Equal(t, tt.expected, res.Message)
			assert.Equal(t, tt.reason, res.Reason())
			assert.False(t, res.HasPayload())
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateComment_UserLookupError(t *testing.T) {
	repo := new(mockCommentRepo)
	service := NewCommentService(repo, &stubUserRepo{err: errors.New("timeout")}, &stubPostRepo{})

	res := service.CreateComment(context.Background(), CreateCommentRequest{Body: "hi", UserID: "user-1", PostID: "post-1"})

	assert.False(t, res.OK)
	assert.Equal(t, "Failed to create comment", res.Message)
}

func TestGetCommentsByPostID_Permissive(t *testing.T) {
	repo := new(mockCommentRepo)
	service := newTestService(repo)

	repo.On("ListByForeignKey", mock.Anything, ByPost, "unknown-post").Return([]*Comment{}, nil)

	res := service.GetCommentsByPostID(context.Background(), "unknown-post")

	assert.True(t, res.OK)
	assert.Equal(t, "Comments found successfully", res.Message)
	assert.Empty(t, res.Payload)
	assert.NotNil(t, res.Payload)
}

func TestGetCommentsByUserID(t *testing.T) {
	repo := new(mockCommentRepo)
	service := newTestService(repo)

	list := []*Comment{{ID: "a"}, {ID: "b"}}
	repo.On("ListByForeignKey", mock.Anything, ByUser, "user-1").Return(list, nil)

	res := service.GetCommentsByUserID(context.Background(), "user-1")

	assert.True(t, res.OK)
	assert.Equal(t, list, res.Payload)
}

func TestGetComments_Pagination(t *testing.T) {
	repo := new(mockCommentRepo)
	service := newTestService(repo)

	repo.On("List", mock.Anything, pagination.Page{Skip: 0, Take: 2}).Return([]*Comment{{ID: "a"}, {ID: "b"}}, nil)

	res := service.GetComments(context.Background(), 2, 0)
	assert.True(t, res.OK)
	assert.Len(t, res.Payload, 2)

	bad := service.GetComments(context.Background(), -3, 0)
	assert.False(t, bad.OK)
	assert.Equal(t, result.ReasonInvalid, bad.Reason())
}

func TestUpdateComment(t *testing.T) {
	repo := new(mockCommentRepo)
	service := newTestService(repo)
	ctx := context.Background()

	repo.On("Update", mock.Anything, "comment-1", UpdateCommentRequest{Body: "edited"}).Return(&Comment{ID: "comment-1", Body: "edited"}, nil)
	repo.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, ErrNotFound)

	ok := service.UpdateComment(ctx, "comment-1", UpdateCommentRequest{Body: "edited"})
	assert.True(t, ok.OK)
	assert.Equal(t, "Comment updated successfully", ok.Message)

	missing := service.UpdateComment(ctx, "missing", UpdateCommentRequest{Body: "edited"})
	assert.False(t, missing.OK)
	assert.Equal(t, "Comment not found", missing.Message)

	empty := service.UpdateComment(ctx, "comment-1", UpdateCommentRequest{Body: ""})
	assert.False(t, empty.OK)
	assert.Equal(t, MsgBodyRequired, empty.Message)
}

func TestGetAndDeleteComment(t *testing.T) {
	repo := new(mockCommentRepo)
	service := newTestService(repo)
	ctx := context.Background()

	repo.On("GetByID", mock.Anything, "comment-1").Return(&Comment{ID: "comment-1"}, nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, ErrNotFound)
	repo.On("Delete", mock.Anything, "comment-1").Return(nil)
	repo.On("Delete", mock.Anything, "broken").Return(errors.New("pq: deadlock detected"))

	found := service.GetCommentByID(ctx, "comment-1")
	assert.True(t, found.OK)
	assert.Equal(t, "Comment found successfully", found.Message)

	missing := service.GetCommentByID(ctx, "missing")
	assert.False(t, missing.OK)
	assert.Equal(t, "Comment not found", missing.Message)

	deleted := service.DeleteComment(ctx, "comment-1")
	assert.True(t, deleted.OK)
	assert.Equal(t, "Comment deleted successfully", deleted.Message)
	assert.False(t, deleted.HasPayload())

	broken := service.DeleteComment(ctx, "broken")
	assert.False(t, broken.OK)
	assert.Equal(t, "Failed to delete comment", broken.Message)
	assert.NotContains(t, broken.Message, "pq")
}

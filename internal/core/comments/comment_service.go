package comments

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/result"
	"Postagram/internal/core/users"
)

var Noun = result.Noun{Singular: "Comment", Plural: "Comments"}

// commentService checks the author and the post before writing a comment.
// The checks and the insert are not wrapped in a transaction.
type commentService struct {
	commentRepo Repository
	userRepo    users.Repository
	postRepo    posts.Repository
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo Repository, userRepo users.Repository, postRepo posts.Repository) Service {
	return &commentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
	}
}

// CreateComment checks the user, then the post, then stores the comment
func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) result.Result[*Comment] {
	req.Body = strings.TrimSpace(req.Body)
	if msg := validateBody(req.Body); msg != "" {
		return result.Invalid[*Comment](msg)
	}

	exists, err := users.Exists(ctx, s.userRepo, req.UserID)
	if err != nil {
		log.Printf("[COMMENTS] user lookup failed: %v", err)
		return result.Internal[*Comment](Noun.Failed("create"))
	}
	if !exists {
		return result.NotFound[*Comment](users.Noun.NotFound())
	}

	exists, err = posts.Exists(ctx, s.postRepo, req.PostID)
	if err != nil {
		log.Printf("[COMMENTS] post lookup failed: %v", err)
		return result.Internal[*Comment](Noun.Failed("create"))
	}
	if !exists {
		return result.NotFound[*Comment](posts.Noun.NotFound())
	}

	comment, err := s.commentRepo.Create(ctx, req)
	if err != nil {
		log.Printf("[COMMENTS] create failed: %v", err)
		return result.Internal[*Comment](Noun.Failed("create"))
	}

	return result.Success(Noun.Created(), comment)
}

// GetCommentByID retrieves a comment by id
func (s *commentService) GetCommentByID(ctx context.Context, id string) result.Result[*Comment] {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Comment](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[COMMENTS] get %s failed: %v", id, err)
		return result.Internal[*Comment](Noun.Failed("get"))
	}

	return result.Success(Noun.Found(), comment)
}

// GetComments lists comments in creation order
func (s *commentService) GetComments(ctx context.Context, take, skip int) result.Result[[]*Comment] {
	page := pagination.New(take, skip)
	if err := page.Validate(); err != nil {
		return result.Invalid[[]*Comment](result.InvalidPagination)
	}

	list, err := s.commentRepo.List(ctx, page)
	if err != nil {
		log.Printf("[COMMENTS] list failed: %v", err)
		return result.Internal[[]*Comment](Noun.FailedMany("list"))
	}

	return result.Success(Noun.FoundMany(), nonNil(list))
}

// GetCommentsByPostID lists a post's comments oldest first
func (s *commentService) GetCommentsByPostID(ctx context.Context, postID string) result.Result[[]*Comment] {
	return s.listBy(ctx, ByPost, postID)
}

// GetCommentsByUserID lists a user's comments oldest first
func (s *commentService) GetCommentsByUserID(ctx context.Context, userID string) result.Result[[]*Comment] {
	return s.listBy(ctx, ByUser, userID)
}

func (s *commentService) listBy(ctx context.Context, key ForeignKey, id string) result.Result[[]*Comment] {
	list, err := s.commentRepo.ListByForeignKey(ctx, key, id)
	if err != nil {
		log.Printf("[COMMENTS] list by %s=%s failed: %v", key, id, err)
		return result.Internal[[]*Comment](Noun.FailedMany("list"))
	}

	return result.Success(Noun.FoundMany(), nonNil(list))
}

// UpdateComment replaces the body
func (s *commentService) UpdateComment(ctx context.Context, id string, req UpdateCommentRequest) result.Result[*Comment] {
	req.Body = strings.TrimSpace(req.Body)
	if msg := validateBody(req.Body); msg != "" {
		return result.Invalid[*Comment](msg)
	}

	comment, err := s.commentRepo.Update(ctx, id, req)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Comment](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[COMMENTS] update %s failed: %v", id, err)
		return result.Internal[*Comment](Noun.Failed("update"))
	}

	return result.Success(Noun.Updated(), comment)
}

// DeleteComment hard-deletes a comment
func (s *commentService) DeleteComment(ctx context.Context, id string) result.Result[*Comment] {
	err := s.commentRepo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Comment](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[COMMENTS] delete %s failed: %v", id, err)
		return result.Internal[*Comment](Noun.Failed("delete"))
	}

	return result.Done[*Comment](Noun.Deleted())
}

func validateBody(body string) string {
	if body == "" {
		return MsgBodyRequired
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return MsgBodyTooLong
	}
	return ""
}

func nonNil(list []*Comment) []*Comment {
	if list == nil {
		return []*Comment{}
	}
	return list
}

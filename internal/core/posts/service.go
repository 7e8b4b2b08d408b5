package posts

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"Postagram/internal/core/images"
	"Postagram/internal/core/pagination"
	"Postagram/internal/core/result"
	"Postagram/internal/core/users"
)

var Noun = result.Noun{Singular: "Post", Plural: "Posts"}

// postService enforces that a post's owner and image exist when the post is written.
// Validation and insert are separate round trips; a concurrent delete of the user or
// image between them is not detected.
type postService struct {
	postRepo  Repository
	userRepo  users.Repository
	imageRepo images.Repository
}

// NewPostService creates a new post service
func NewPostService(postRepo Repository, userRepo users.Repository, imageRepo images.Repository) Service {
	return &postService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		imageRepo: imageRepo,
	}
}

// CreatePost checks the user, then the image, then stores the post
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) result.Result[*Post] {
	req.Subtitle = strings.TrimSpace(req.Subtitle)
	if utf8.RuneCountInString(req.Subtitle) > MaxSubtitleLength {
		return result.Invalid[*Post](MsgSubtitleTooLong)
	}

	exists, err := users.Exists(ctx, s.userRepo, req.UserID)
	if err != nil {
		log.Printf("[POSTS] user lookup failed: %v", err)
		return result.Internal[*Post](Noun.Failed("create"))
	}
	if !exists {
		return result.NotFound[*Post](users.Noun.NotFound())
	}

	exists, err = images.Exists(ctx, s.imageRepo, req.ImageID)
	if err != nil {
		log.Printf("[POSTS] image lookup failed: %v", err)
		return result.Internal[*Post](Noun.Failed("create"))
	}
	if !exists {
		return result.NotFound[*Post](images.Noun.NotFound())
	}

	post, err := s.postRepo.Create(ctx, req)
	if err != nil {
		log.Printf("[POSTS] create failed: %v", err)
		return result.Internal[*Post](Noun.Failed("create"))
	}

	return result.Success(Noun.Created(), post)
}

// GetPostByID retrieves a post by id
func (s *postService) GetPostByID(ctx context.Context, id string) result.Result[*Post] {
	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Post](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[POSTS] get %s failed: %v", id, err)
		return result.Internal[*Post](Noun.Failed("get"))
	}

	return result.Success(Noun.Found(), post)
}

// GetPosts lists posts in creation order
func (s *postService) GetPosts(ctx context.Context, take, skip int) result.Result[[]*Post] {
	page := pagination.New(take, skip)
	if err := page.Validate(); err != nil {
		return result.Invalid[[]*Post](result.InvalidPagination)
	}

	list, err := s.postRepo.List(ctx, page)
	if err != nil {
		log.Printf("[POSTS] list failed: %v", err)
		return result.Internal[[]*Post](Noun.FailedMany("list"))
	}

	return result.Success(Noun.FoundMany(), nonNil(list))
}

// GetPostsByUserID lists a user's posts
func (s *postService) GetPostsByUserID(ctx context.Context, userID string) result.Result[[]*Post] {
	return s.listBy(ctx, ByUser, userID)
}

// GetPostsByImageID lists the posts that reference an image
func (s *postService) GetPostsByImageID(ctx context.Context, imageID string) result.Result[[]*Post] {
	return s.listBy(ctx, ByImage, imageID)
}

func (s *postService) listBy(ctx context.Context, key ForeignKey, id string) result.Result[[]*Post] {
	list, err := s.postRepo.ListByForeignKey(ctx, key, id)
	if err != nil {
		log.Printf("[POSTS] list by %s=%s failed: %v", key, id, err)
		return result.Internal[[]*Post](Noun.FailedMany("list"))
	}

	return result.Success(Noun.FoundMany(), nonNil(list))
}

// UpdatePost replaces the subtitle
func (s *postService) UpdatePost(ctx context.Context, id string, req UpdatePostRequest) result.Result[*Post] {
	req.Subtitle = strings.TrimSpace(req.Subtitle)
	if utf8.RuneCountInString(req.Subtitle) > MaxSubtitleLength {
		return result.Invalid[*Post](MsgSubtitleTooLong)
	}

	post, err := s.postRepo.Update(ctx, id, req)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Post](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[POSTS] update %s failed: %v", id, err)
		return result.Internal[*Post](Noun.Failed("update"))
	}

	return result.Success(Noun.Updated(), post)
}

// DeletePost hard-deletes a post
func (s *postService) DeletePost(ctx context.Context, id string) result.Result[*Post] {
	err := s.postRepo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Post](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[POSTS] delete %s failed: %v", id, err)
		return result.Internal[*Post](Noun.Failed("delete"))
	}

	return result.Done[*Post](Noun.Deleted())
}

func nonNil(list []*Post) []*Post {
	if list == nil {
		return []*Post{}
	}
	return list
}

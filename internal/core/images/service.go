package images

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/result"
	"Postagram/internal/core/users"
)

var Noun = result.Noun{Singular: "Image", Plural: "Images"}

// imageService validates the owner before writing. The owner lookup and the
// insert are not atomic: a user deleted in between leaves an orphaned image.
type imageService struct {
	imageRepo Repository
	userRepo  users.Repository
}

// NewImageService creates a new image service
func NewImageService(imageRepo Repository, userRepo users.Repository) Service {
	return &imageService{
		imageRepo: imageRepo,
		userRepo:  userRepo,
	}
}

// CreateImage stores an image for an existing user
func (s *imageService) CreateImage(ctx context.Context, req CreateImageRequest) result.Result[*Image] {
	req.URL = strings.TrimSpace(req.URL)
	if !validURL(req.URL) {
		return result.Invalid[*Image](MsgInvalidURL)
	}

	exists, err := users.Exists(ctx, s.userRepo, req.UserID)
	if err != nil {
		log.Printf("[IMAGES] user lookup failed: %v", err)
		return result.Internal[*Image](Noun.Failed("create"))
	}
	if !exists {
		return result.NotFound[*Image](users.Noun.NotFound())
	}

	image, err := s.imageRepo.Create(ctx, req)
	if err != nil {
		log.Printf("[IMAGES] create failed: %v", err)
		return result.Internal[*Image](Noun.Failed("create"))
	}

	return result.Success(Noun.Created(), image)
}

// GetImageByID retrieves an image by id
func (s *imageService) GetImageByID(ctx context.Context, id string) result.Result[*Image] {
	image, err := s.imageRepo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Image](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[IMAGES] get %s failed: %v", id, err)
		return result.Internal[*Image](Noun.Failed("get"))
	}

	return result.Success(Noun.Found(), image)
}

// GetImages lists images in creation order
func (s *imageService) GetImages(ctx context.Context, take, skip int) result.Result[[]*Image] {
	page := pagination.New(take, skip)
	if err := page.Validate(); err != nil {
		return result.Invalid[[]*Image](result.InvalidPagination)
	}

	list, err := s.imageRepo.List(ctx, page)
	if err != nil {
		log.Printf("[IMAGES] list failed: %v", err)
		return result.Internal[[]*Image](Noun.FailedMany("list"))
	}

	return result.Success(Noun.FoundMany(), nonNil(list))
}

// GetImagesByUserID lists a user's images. An unknown user yields an empty list.
func (s *imageService) GetImagesByUserID(ctx context.Context, userID string) result.Result[[]*Image] {
	list, err := s.imageRepo.ListByForeignKey(ctx, ByUser, userID)
	if err != nil {
		log.Printf("[IMAGES] list by user %s failed: %v", userID, err)
		return result.Internal[[]*Image](Noun.FailedMany("list"))
	}

	return result.Success(Noun.FoundMany(), nonNil(list))
}

// DeleteImage hard-deletes an image
func (s *imageService) DeleteImage(ctx context.Context, id string) result.Result[*Image] {
	err := s.imageRepo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return result.NotFound[*Image](Noun.NotFound())
	}
	if err != nil {
		log.Printf("[IMAGES] delete %s failed: %v", id, err)
		return result.Internal[*Image](Noun.Failed("delete"))
	}

	return result.Done[*Image](Noun.Deleted())
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func nonNil(list []*Image) []*Image {
	if list == nil {
		return []*Image{}
	}
	return list
}

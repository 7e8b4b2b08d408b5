package db

import (
	"unicode/utf8"

	"Postagram/internal/core/comments"
	"Postagram/internal/core/images"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/reactions"
)

// The Check functions enforce the row constraints of the schema in
// internal/db/migrations. Both backends run them before writing, so a row
// rejected by one backend is rejected by the other with the same error.

// CheckNewImage mirrors the UUID type of images.user_id
func CheckNewImage(req images.CreateImageRequest) error {
	if !IsID(req.UserID) {
		return images.ErrInvalidReference
	}
	return nil
}

// CheckNewPost mirrors posts_subtitle_length and the UUID reference columns
func CheckNewPost(req posts.CreatePostRequest) error {
	if err := checkSubtitle(req.Subtitle); err != nil {
		return err
	}
	if !IsID(req.UserID) || !IsID(req.ImageID) {
		return posts.ErrInvalidReference
	}
	return nil
}

// CheckPostUpdate mirrors posts_subtitle_length
func CheckPostUpdate(req posts.UpdatePostRequest) error {
	return checkSubtitle(req.Subtitle)
}

func checkSubtitle(subtitle string) error {
	if utf8.RuneCountInString(subtitle) > posts.MaxSubtitleLength {
		return posts.ErrSubtitleTooLong
	}
	return nil
}

// CheckNewComment mirrors comments_body_length and the UUID reference columns
func CheckNewComment(req comments.CreateCommentRequest) error {
	if err := checkBody(req.Body); err != nil {
		return err
	}
	if !IsID(req.UserID) || !IsID(req.PostID) {
		return comments.ErrInvalidReference
	}
	return nil
}

// CheckCommentUpdate mirrors comments_body_length
func CheckCommentUpdate(req comments.UpdateCommentRequest) error {
	return checkBody(req.Body)
}

func checkBody(body string) error {
	if n := utf8.RuneCountInString(body); n < 1 || n > comments.MaxBodyLength {
		return comments.ErrInvalidBody
	}
	return nil
}

// CheckNewReaction mirrors reactions_type_check, reactions_target_check and
// the UUID reference columns
func CheckNewReaction(input reactions.NewReaction) error {
	if err := input.Validate(); err != nil {
		return err
	}
	target := input.PostID
	if target == "" {
		target = input.CommentID
	}
	if !IsID(input.UserID) || !IsID(target) {
		return reactions.ErrInvalidReference
	}
	return nil
}

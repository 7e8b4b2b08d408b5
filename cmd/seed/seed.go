package main

import (
	"context"
	"errors"
	"fmt"

	"Postagram/internal/api/routes"
	"Postagram/internal/core/comments"
	"Postagram/internal/core/images"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/reactions"
	"Postagram/internal/core/result"
	"Postagram/internal/core/users"
)

const demoPassword = "postagram123"

var demoUsers = []users.CreateUserRequest{
	{Username: "ana.souza", Email: "ana@postagram.dev", FullName: "Ana Souza"},
	{Username: "bruno_lima", Email: "bruno@postagram.dev", FullName: "Bruno Lima"},
	{Username: "carla.dias", Email: "carla@postagram.dev", FullName: "Carla Dias"},
}

var demoSubtitles = []string{
	"Sunrise over the bay",
	"Weekend hike",
	"Coffee and code",
}

// seedSummary counts what seedDemo created
type seedSummary struct {
	Users     []*users.User
	Images    int
	Posts     int
	Comments  int
	Reactions int
}

func (s seedSummary) String() string {
	return fmt.Sprintf("%d users, %d images, %d posts, %d comments, %d reactions",
		len(s.Users), s.Images, s.Posts, s.Comments, s.Reactions)
}

// seedDemo creates one image and post per user, a comment from every other
// user on each post and alternating reactions on posts and comments.
// Everything goes through the services so the usual validation applies.
func seedDemo(ctx context.Context, services routes.Services) (seedSummary, error) {
	var summary seedSummary

	for _, req := range demoUsers {
		req.Password = demoPassword
		user, err := must(services.Users.CreateUser(ctx, req))
		if err != nil {
			return summary, fmt.Errorf("create user %s: %w", req.Username, err)
		}
		summary.Users = append(summary.Users, user)
	}

	var postList []*posts.Post
	for i, user := range summary.Users {
		image, err := must(services.Images.CreateImage(ctx, images.CreateImageRequest{
			URL:    fmt.Sprintf("https://picsum.photos/seed/%s/1080/1080", user.Username),
			UserID: user.ID,
		}))
		if err != nil {
			return summary, fmt.Errorf("create image: %w", err)
		}
		summary.Images++

		post, err := must(services.Posts.CreatePost(ctx, posts.CreatePostRequest{
			Subtitle: demoSubtitles[i%len(demoSubtitles)],
			UserID:   user.ID,
			ImageID:  image.ID,
		}))
		if err != nil {
			return summary, fmt.Errorf("create post: %w", err)
		}
		summary.Posts++
		postList = append(postList, post)
	}

	n := 0
	for _, post := range postList {
		for _, user := range summary.Users {
			if user.ID == post.UserID {
				continue
			}

			comment, err := must(services.Comments.CreateComment(ctx, comments.CreateCommentRequest{
				Body:   fmt.Sprintf("Great shot! - %s", user.FullName),
				UserID: user.ID,
				PostID: post.ID,
			}))
			if err != nil {
				return summary, fmt.Errorf("create comment: %w", err)
			}
			summary.Comments++

			reactionType := reactions.Like
			if n%3 == 2 {
				reactionType = reactions.Dislike
			}
			n++

			if _, err := must(services.PostReactions.CreateReaction(ctx, reactions.CreateReactionRequest{
				Type: reactionType, UserID: user.ID, TargetID: post.ID,
			})); err != nil {
				return summary, fmt.Errorf("create post reaction: %w", err)
			}
			summary.Reactions++

			if _, err := must(services.CommentReactions.CreateReaction(ctx, reactions.CreateReactionRequest{
				Type: reactions.Like, UserID: post.UserID, TargetID: comment.ID,
			})); err != nil {
				return summary, fmt.Errorf("create comment reaction: %w", err)
			}
			summary.Reactions++
		}
	}

	return summary, nil
}

// must turns a failed result into an error carrying its message
func must[T any](res result.Result[T]) (T, error) {
	if !res.OK {
		var zero T
		return zero, errors.New(res.Message)
	}
	return res.Payload, nil
}

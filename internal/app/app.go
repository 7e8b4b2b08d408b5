// Package app wires repositories and services for the selected storage backend.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"Postagram/internal/api/routes"
	"Postagram/internal/config"
	"Postagram/internal/core/comments"
	"Postagram/internal/core/images"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/reactions"
	"Postagram/internal/core/users"
	"Postagram/internal/db/memory"
	"Postagram/internal/db/postgres"
)

// Repositories is one complete storage backend
type Repositories struct {
	Users     users.Repository
	Images    images.Repository
	Posts     posts.Repository
	Comments  comments.Repository
	Reactions reactions.Repository

	// DB is nil for the memory backend
	DB *sql.DB

	reset func(ctx context.Context) error
}

// NewMemoryRepositories returns an empty ephemeral backend
func NewMemoryRepositories() *Repositories {
	userRepo := memory.NewUserRepository()
	imageRepo := memory.NewImageRepository()
	postRepo := memory.NewPostRepository()
	commentRepo := memory.NewCommentRepository()
	reactionRepo := memory.NewReactionRepository()

	return &Repositories{
		Users:     userRepo,
		Images:    imageRepo,
		Posts:     postRepo,
		Comments:  commentRepo,
		Reactions: reactionRepo,
		reset: func(context.Context) error {
			userRepo.Clear()
			imageRepo.Clear()
			postRepo.Clear()
			commentRepo.Clear()
			reactionRepo.Clear()
			return nil
		},
	}
}

// NewPostgresRepositories returns repositories backed by db. The schema must
// already be migrated.
func NewPostgresRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:     postgres.NewUserRepository(db),
		Images:    postgres.NewImageRepository(db),
		Posts:     postgres.NewPostRepository(db),
		Comments:  postgres.NewCommentRepository(db),
		Reactions: postgres.NewReactionRepository(db),
		DB:        db,
		reset: func(ctx context.Context) error {
			return postgres.Truncate(ctx, db)
		},
	}
}

// Open connects the backend named by cfg, running migrations for postgres
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		log.Println("Using in-memory storage; data is lost on restart")
		return NewMemoryRepositories(), nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Println("Connected to database")

		if err := postgres.Migrate(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Println("Migrations completed successfully")

		return NewPostgresRepositories(db), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Reset deletes every row from every table
func (r *Repositories) Reset(ctx context.Context) error {
	return r.reset(ctx)
}

// Close releases the database connection, if any
func (r *Repositories) Close() error {
	if r.DB == nil {
		return nil
	}
	return r.DB.Close()
}

// NewServices builds every service over repos
func NewServices(repos *Repositories) routes.Services {
	return routes.Services{
		Users:            users.NewUserService(repos.Users),
		Images:           images.NewImageService(repos.Images, repos.Users),
		Posts:            posts.NewPostService(repos.Posts, repos.Users, repos.Images),
		Comments:         comments.NewCommentService(repos.Comments, repos.Users, repos.Posts),
		PostReactions:    reactions.NewPostReactionService(repos.Reactions, repos.Users, repos.Posts),
		CommentReactions: reactions.NewCommentReactionService(repos.Reactions, repos.Users, repos.Comments),
	}
}

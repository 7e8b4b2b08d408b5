package conformance

import (
	"context"
	"os"
	"testing"

	"Postagram/internal/core/comments"
	"Postagram/internal/core/images"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/reactions"
	"Postagram/internal/core/users"
	"Postagram/internal/db/memory"
	"Postagram/internal/db/postgres"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stack is every service wired onto one backend
type stack struct {
	users            users.Service
	images           images.Service
	posts            posts.Service
	comments         comments.Service
	postReactions    reactions.Service
	commentReactions reactions.Service
}

type repos struct {
	users     users.Repository
	images    images.Repository
	posts     posts.Repository
	comments  comments.Repository
	reactions reactions.Repository
}

func (r repos) stack() *stack {
	return &stack{
		users:            users.NewUserServiceWithHashCost(r.users, bcrypt.MinCost),
		images:           images.NewImageService(r.images, r.users),
		posts:            posts.NewPostService(r.posts, r.users, r.images),
		comments:         comments.NewCommentService(r.comments, r.users, r.posts),
		postReactions:    reactions.NewPostReactionService(r.reactions, r.users, r.posts),
		commentReactions: reactions.NewCommentReactionService(r.reactions, r.users, r.comments),
	}
}

// backend builds fresh, empty repositories for one test
type backend struct {
	name  string
	fresh func(t *testing.T) repos
}

func memoryBackend() backend {
	return backend{
		name: "memory",
		fresh: func(t *testing.T) repos {
			return repos{
				users:     memory.NewUserRepository(),
				images:    memory.NewImageRepository(),
				posts:     memory.NewPostRepository(),
				comments:  memory.NewCommentRepository(),
				reactions: memory.NewReactionRepository(),
			}
		},
	}
}

func postgresBackend() backend {
	return backend{
		name: "postgres",
		fresh: func(t *testing.T) repos {
			dsn := os.Getenv("TEST_DATABASE_URL")
			if dsn == "" {
				t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL backend")
			}

			ctx := context.Background()
			db, err := postgres.Open(ctx, dsn)
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			require.NoError(t, postgres.Migrate(db))
			require.NoError(t, postgres.Truncate(ctx, db))

			return repos{
				users:     postgres.NewUserRepository(db),
				images:    postgres.NewImageRepository(db),
				posts:     postgres.NewPostRepository(db),
				comments:  postgres.NewCommentRepository(db),
				reactions: postgres.NewReactionRepository(db),
			}
		},
	}
}

// forEachBackend runs fn once per backend as a subtest
func forEachBackend(t *testing.T, fn func(t *testing.T, s *stack)) {
	forEachRepos(t, func(t *testing.T, r repos) {
		fn(t, r.stack())
	})
}

// forEachRepos hands fn the raw repositories of each backend
func forEachRepos(t *testing.T, fn func(t *testing.T, r repos)) {
	for _, b := range []backend{memoryBackend(), postgresBackend()} {
		b := b
		t.Run(b.name, func(t *testing.T) {
			fn(t, b.fresh(t))
		})
	}
}

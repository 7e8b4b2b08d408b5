package routes

import (
	"net/http"
	"time"

	"Postagram/internal/api/middleware"
	"Postagram/internal/core/comments"
	"Postagram/internal/core/images"
	"Postagram/internal/core/posts"
	"Postagram/internal/core/reactions"
	"Postagram/internal/core/users"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Services is everything the HTTP API serves
type Services struct {
	Users            users.Service
	Images           images.Service
	Posts            posts.Service
	Comments         comments.Service
	PostReactions    reactions.Service
	CommentReactions reactions.Service
}

// Options configures the cross-cutting middleware
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	RequestTimeout time.Duration

	// RateLimiter is optional; nil disables rate limiting
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the complete HTTP API
func NewRouter(services Services, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chiMiddleware.Timeout(opts.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware)
	}

	authMiddleware := middleware.NewJWTAuthMiddleware(opts.JWTSecret)

	RegisterUserRoutes(r, services.Users, authMiddleware)
	RegisterImageRoutes(r, services.Images, authMiddleware)
	RegisterPostRoutes(r, services.Posts, authMiddleware)
	RegisterCommentRoutes(r, services.Comments, authMiddleware)
	RegisterReactionRoutes(r, reactions.TargetPost, services.PostReactions, authMiddleware)
	RegisterReactionRoutes(r, reactions.TargetComment, services.CommentReactions, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}

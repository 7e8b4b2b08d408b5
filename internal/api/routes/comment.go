package routes

import (
	"Postagram/internal/api/handlers/comment"
	"Postagram/internal/api/middleware"
	"Postagram/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers /comments; every endpoint requires authentication
func RegisterCommentRoutes(r chi.Router, service comments.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := comment.NewHandler(service)

	r.Route("/comments", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/user/{id}", h.HandleListByUser)
		r.Get("/post/{id}", h.HandleListByPost)
		r.Get("/{id}", h.HandleGet)
		r.Patch("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
	})
}

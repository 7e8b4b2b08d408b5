package routes

import (
	"Postagram/internal/api/handlers/post"
	"Postagram/internal/api/middleware"
	"Postagram/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers /posts; every endpoint requires authentication
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := post.NewHandler(service)

	r.Route("/posts", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/user/{id}", h.HandleListByUser)
		r.Get("/image/{id}", h.HandleListByImage)
		r.Get("/{id}", h.HandleGet)
		r.Patch("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
	})
}

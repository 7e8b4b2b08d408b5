package routes

import (
	"Postagram/internal/api/handlers/image"
	"Postagram/internal/api/middleware"
	"Postagram/internal/core/images"

	"github.com/go-chi/chi/v5"
)

// RegisterImageRoutes registers /images; every endpoint requires authentication
func RegisterImageRoutes(r chi.Router, service images.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := image.NewHandler(service)

	r.Route("/images", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/user/{id}", h.HandleListByUser)
		r.Get("/{id}", h.HandleGet)
		r.Delete("/{id}", h.HandleDelete)
	})
}

package routes

import (
	"Postagram/internal/api/handlers/user"
	"Postagram/internal/api/middleware"
	"Postagram/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers /users. Sign-up is the only public endpoint.
func RegisterUserRoutes(r chi.Router, service users.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := user.NewHandler(service)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.HandleCreate)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Get("/", h.HandleList)
			r.Get("/{id}", h.HandleGet)
			r.Delete("/{id}", h.HandleDelete)
		})
	})
}

package routes

import (
	"Postagram/internal/api/handlers/reaction"
	"Postagram/internal/api/middleware"
	"Postagram/internal/core/reactions"

	"github.com/go-chi/chi/v5"
)

// RegisterReactionRoutes registers /post-reactions or /comment-reactions,
// depending on target. Every endpoint requires authentication.
func RegisterReactionRoutes(r chi.Router, target reactions.Target, service reactions.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := reaction.NewHandler(service, target)
	prefix := "/" + string(target)

	r.Route(prefix+"-reactions", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/user/{id}", h.HandleListByUser)
		r.Get(prefix+"/{id}", h.HandleListByTarget)
		r.Get("/{id}", h.HandleGet)
		r.Delete("/{id}", h.HandleDelete)
	})
}

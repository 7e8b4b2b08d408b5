package user

import (
	"net/http"

	"Postagram/internal/api/handlers"
	"Postagram/internal/core/users"
)

var createSchema = handlers.MustSchema(`{
	"type": "object",
	"properties": {
		"username": {"type": "string"},
		"email": {"type": "string"},
		"fullName": {"type": "string"},
		"password": {"type": "string"}
	},
	"required": ["username", "email", "fullName", "password"]
}`)

// Handler handles user endpoints
type Handler struct {
	service users.Service
}

// NewHandler creates a new user handler
func NewHandler(service users.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate registers a user. This is the only endpoint that needs no token.
// POST /users
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req users.CreateUserRequest
	if err := handlers.DecodeJSON(r, createSchema, &req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlers.WriteResult(w, http.StatusCreated, h.service.CreateUser(r.Context(), req))
}

// HandleList lists users
// GET /users?take=&skip=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	take, skip, err := handlers.Page(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlers.WriteResult(w, http.StatusOK, h.service.GetUsers(r.Context(), take, skip))
}

// HandleGet returns one user
// GET /users/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetUserByID(r.Context(), handlers.ID(r)))
}

// HandleDelete deletes the authenticated user's own account
// DELETE /users/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.AuthenticatedUser(w, r)
	if !ok {
		return
	}

	id := handlers.ID(r)
	if id != userID {
		handlers.WriteError(w, http.StatusForbidden, "Users can only delete their own account")
		return
	}

	handlers.WriteResult(w, http.StatusOK, h.service.DeleteUser(r.Context(), id))
}

package comment

import (
	"net/http"

	"Postagram/internal/api/handlers"
	"Postagram/internal/core/comments"
)

var (
	createSchema = handlers.MustSchema(`{
		"type": "object",
		"properties": {
			"body": {"type": "string"},
			"postId": {"type": "string", "minLength": 1}
		},
		"required": ["body", "postId"]
	}`)

	updateSchema = handlers.MustSchema(`{
		"type": "object",
		"properties": {
			"body": {"type": "string"}
		},
		"required": ["body"]
	}`)
)

// Handler handles comment endpoints
type Handler struct {
	service comments.Service
}

// NewHandler creates a new comment handler
func NewHandler(service comments.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate adds a comment by the authenticated user
// POST /comments  { "body": "...", "postId": "..." }
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.AuthenticatedUser(w, r)
	if !ok {
		return
	}

	var req comments.CreateCommentRequest
	if err := handlers.DecodeJSON(r, createSchema, &req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = userID

	handlers.WriteResult(w, http.StatusCreated, h.service.CreateComment(r.Context(), req))
}

// HandleList lists comments
// GET /comments?take=&skip=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	take, skip, err := handlers.Page(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlers.WriteResult(w, http.StatusOK, h.service.GetComments(r.Context(), take, skip))
}

// HandleGet returns one comment
// GET /comments/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetCommentByID(r.Context(), handlers.ID(r)))
}

// HandleListByUser lists a user's comments
// GET /comments/user/{id}
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetCommentsByUserID(r.Context(), handlers.ID(r)))
}

// HandleListByPost lists a post's comments
// GET /comments/post/{id}
func (h *Handler) HandleListByPost(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetCommentsByPostID(r.Context(), handlers.ID(r)))
}

// HandleUpdate replaces a comment's body
// PATCH /comments/{id}  { "body": "..." }
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req comments.UpdateCommentRequest
	if err := handlers.DecodeJSON(r, updateSchema, &req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlers.WriteResult(w, http.StatusOK, h.service.UpdateComment(r.Context(), handlers.ID(r), req))
}

// HandleDelete deletes a comment
// DELETE /comments/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.DeleteComment(r.Context(), handlers.ID(r)))
}

package post

import (
	"net/http"

	"Postagram/internal/api/handlers"
	"Postagram/internal/core/posts"
)

var (
	createSchema = handlers.MustSchema(`{
		"type": "object",
		"properties": {
			"subtitle": {"type": "string"},
			"imageId": {"type": "string", "minLength": 1}
		},
		"required": ["imageId"]
	}`)

	updateSchema = handlers.MustSchema(`{
		"type": "object",
		"properties": {
			"subtitle": {"type": "string"}
		},
		"required": ["subtitle"]
	}`)
)

// Handler handles post endpoints
type Handler struct {
	service posts.Service
}

// NewHandler creates a new post handler
func NewHandler(service posts.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate publishes an image as a post by the authenticated user
// POST /posts  { "subtitle": "...", "imageId": "..." }
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.AuthenticatedUser(w, r)
	if !ok {
		return
	}

	var req posts.CreatePostRequest
	if err := handlers.DecodeJSON(r, createSchema, &req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = userID

	handlers.WriteResult(w, http.StatusCreated, h.service.CreatePost(r.Context(), req))
}

// HandleList lists posts
// GET /posts?take=&skip=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	take, skip, err := handlers.Page(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlers.WriteResult(w, http.StatusOK, h.service.GetPosts(r.Context(), take, skip))
}

// HandleGet returns one post
// GET /posts/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetPostByID(r.Context(), handlers.ID(r)))
}

// HandleListByUser lists a user's posts
// GET /posts/user/{id}
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetPostsByUserID(r.Context(), handlers.ID(r)))
}

// HandleListByImage lists the posts of an image
// GET /posts/image/{id}
func (h *Handler) HandleListByImage(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetPostsByImageID(r.Context(), handlers.ID(r)))
}

// HandleUpdate replaces a post's subtitle
// PATCH /posts/{id}  { "subtitle": "..." }
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req posts.UpdatePostRequest
	if err := handlers.DecodeJSON(r, updateSchema, &req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlers.WriteResult(w, http.StatusOK, h.service.UpdatePost(r.Context(), handlers.ID(r), req))
}

// HandleDelete deletes a post
// DELETE /posts/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.DeletePost(r.Context(), handlers.ID(r)))
}

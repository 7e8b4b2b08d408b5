package image

import (
	"net/http"

	"Postagram/internal/api/handlers"
	"Postagram/internal/core/images"
)

var createSchema = handlers.MustSchema(`{
	"type": "object",
	"properties": {
		"url": {"type": "string", "minLength": 1}
	},
	"required": ["url"]
}`)

// Handler handles image endpoints
type Handler struct {
	service images.Service
}

// NewHandler creates a new image handler
func NewHandler(service images.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate stores an image URL owned by the authenticated user
// POST /images  { "url": "https://..." }
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.AuthenticatedUser(w, r)
	if !ok {
		return
	}

	var req images.CreateImageRequest
	if err := handlers.DecodeJSON(r, createSchema, &req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = userID

	handlers.WriteResult(w, http.StatusCreated, h.service.CreateImage(r.Context(), req))
}

// HandleList lists images
// GET /images?take=&skip=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	take, skip, err := handlers.Page(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlers.WriteResult(w, http.StatusOK, h.service.GetImages(r.Context(), take, skip))
}

// HandleGet returns one image
// GET /images/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetImageByID(r.Context(), handlers.ID(r)))
}

// HandleListByUser lists a user's images
// GET /images/user/{id}
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetImagesByUserID(r.Context(), handlers.ID(r)))
}

// HandleDelete deletes an image
// DELETE /images/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.DeleteImage(r.Context(), handlers.ID(r)))
}

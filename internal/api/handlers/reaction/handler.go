// Package reaction serves post reactions and comment reactions. One Handler
// is mounted per target kind.
package reaction

import (
	"fmt"
	"net/http"

	"Postagram/internal/api/handlers"
	"Postagram/internal/core/reactions"
)

// Handler handles the reaction endpoints of one target kind
type Handler struct {
	service      reactions.Service
	targetField  string
	createSchema *handlers.Schema
}

// NewHandler creates a handler for reactions on target.
// The create body names the target "postId" or "commentId".
func NewHandler(service reactions.Service, target reactions.Target) *Handler {
	field := string(target) + "Id"
	return &Handler{
		service:     service,
		targetField: field,
		createSchema: handlers.MustSchema(fmt.Sprintf(`{
			"type": "object",
			"properties": {
				"type": {"type": "string"},
				%q: {"type": "string", "minLength": 1}
			},
			"required": ["type", %q]
		}`, field, field)),
	}
}

type createRequest struct {
	Type      reactions.Type `json:"type"`
	PostID    string         `json:"postId"`
	CommentID string         `json:"commentId"`
}

// HandleCreate creates a reaction owned by the authenticated user
// POST /post-reactions  { "type": "like" | "dislike", "postId": "..." }
// POST /comment-reactions  { "type": "like" | "dislike", "commentId": "..." }
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.AuthenticatedUser(w, r)
	if !ok {
		return
	}

	var req createRequest
	if err := handlers.DecodeJSON(r, h.createSchema, &req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	targetID := req.PostID
	if h.targetField == "commentId" {
		targetID = req.CommentID
	}

	res := h.service.CreateReaction(r.Context(), reactions.CreateReactionRequest{
		Type:     req.Type,
		UserID:   userID,
		TargetID: targetID,
	})
	handlers.WriteResult(w, http.StatusCreated, res)
}

// HandleList lists reactions
// GET /post-reactions?type=like&take=10&skip=0
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	take, skip, err := handlers.Page(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	reactionType := reactions.Type(r.URL.Query().Get("type"))
	handlers.WriteResult(w, http.StatusOK, h.service.GetReactions(r.Context(), reactionType, take, skip))
}

// HandleGet returns one reaction
// GET /post-reactions/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetReactionByID(r.Context(), handlers.ID(r)))
}

// HandleListByTarget lists the reactions on one post or comment
// GET /post-reactions/post/{id}, GET /comment-reactions/comment/{id}
func (h *Handler) HandleListByTarget(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetReactionsByTargetID(r.Context(), handlers.ID(r)))
}

// HandleListByUser lists a user's reactions
// GET /post-reactions/user/{id}
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.GetReactionsByUserID(r.Context(), handlers.ID(r)))
}

// HandleDelete hard-deletes a reaction
// DELETE /post-reactions/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	handlers.WriteResult(w, http.StatusOK, h.service.DeleteReaction(r.Context(), handlers.ID(r)))
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sociagram_22520074/internal/httputil"
	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/service"
)

// InteractionHandler serves the like/unlike/share/unshare mutators.
type InteractionHandler struct {
	postService *service.PostService
}

func NewInteractionHandler(postService *service.PostService) *InteractionHandler {
	return &InteractionHandler{
		postService: postService,
	}
}

func (h *InteractionHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "like", h.postService.Like)
}

func (h *InteractionHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "unlike", h.postService.Unlike)
}

func (h *InteractionHandler) Share(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "share", h.postService.Share)
}

func (h *InteractionHandler) Unshare(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "unshare", h.postService.Unshare)
}

// mutate handles the shared decode/validate/dispatch shape of the four
// interaction mutators.
func (h *InteractionHandler) mutate(w http.ResponseWriter, r *http.Request, action string, op func(context.Context, string, int64) error) {
	var req model.InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Username == "" || req.PostID == "" {
		httputil.WriteBadRequest(w, "username and postId are required")
		return
	}

	postID, err := service.ParsePostID(req.PostID)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	if err := op(r.Context(), req.Username, postID); err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		default:
			log.Printf("[ERROR] %s handler: %v", action, err)
			httputil.WriteInternalError(w, "Failed to "+action+" post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully processed " + action,
	})
}

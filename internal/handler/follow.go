package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sociagram_22520074/internal/httputil"
	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/service"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
	}
}

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var req model.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Follower == "" || req.Following == "" {
		httputil.WriteBadRequest(w, "follower and following are required")
		return
	}

	if err := h.followService.Follow(r.Context(), req.Follower, req.Following); err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] Follow handler: %v", err)
			httputil.WriteInternalError(w, "Failed to follow user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully followed user",
	})
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	var req model.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Follower == "" || req.Following == "" {
		httputil.WriteBadRequest(w, "follower and following are required")
		return
	}

	if err := h.followService.Unfollow(r.Context(), req.Follower, req.Following); err != nil {
		log.Printf("[ERROR] Unfollow handler: %v", err)
		httputil.WriteInternalError(w, "Failed to unfollow user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully unfollowed user",
	})
}

func (h *FollowHandler) IsFollowing(w http.ResponseWriter, r *http.Request) {
	follower := chi.URLParam(r, "follower")
	following := chi.URLParam(r, "following")

	isFollowing, err := h.followService.IsFollowing(r.Context(), follower, following)
	if err != nil {
		log.Printf("[ERROR] IsFollowing handler: %v", err)
		httputil.WriteInternalError(w, "Failed to check follow status")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{
		"isFollowing": isFollowing,
	})
}

package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sociagram_22520074/internal/httputil"
	"sociagram_22520074/internal/service"
)

// DiscoverHandler serves the two ranked read paths: friend suggestions and
// the explore feed.
type DiscoverHandler struct {
	suggestService *service.SuggestService
	exploreService *service.ExploreService
}

func NewDiscoverHandler(suggestService *service.SuggestService, exploreService *service.ExploreService) *DiscoverHandler {
	return &DiscoverHandler{
		suggestService: suggestService,
		exploreService: exploreService,
	}
}

// Suggestions returns up to 8 ranked friend suggestions for the user.
// An unknown user gets an empty list, not an error.
func (h *DiscoverHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	suggestions, err := h.suggestService.Suggestions(r.Context(), username)
	if err != nil {
		log.Printf("[ERROR] Suggestions handler: %v", err)
		httputil.WriteInternalError(w, "Failed to compute suggestions")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}

// Explore returns up to 60 ranked explore posts for the user.
// An unknown user gets an empty list, not an error.
func (h *DiscoverHandler) Explore(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	posts, err := h.exploreService.Explore(r.Context(), username)
	if err != nil {
		log.Printf("[ERROR] Explore handler: %v", err)
		httputil.WriteInternalError(w, "Failed to compute explore feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
	})
}

package handler

import (
	"net/http"

	"sociagram_22520074/internal/httputil"
	"sociagram_22520074/internal/model"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List returns the fixed category catalog.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string][]string{
		"categories": model.Categories,
	})
}

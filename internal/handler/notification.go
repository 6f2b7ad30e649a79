package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sociagram_22520074/internal/httputil"
	"sociagram_22520074/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetRecent returns the newest notifications for a user plus the unread count.
func (h *NotificationHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	list, err := h.notificationService.GetRecent(r.Context(), username)
	if err != nil {
		log.Printf("[ERROR] GetRecent notifications handler: %v", err)
		httputil.WriteInternalError(w, "Failed to get notifications")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, list)
}

// MarkAllRead marks every notification for a user as read.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.notificationService.MarkAllRead(r.Context(), username); err != nil {
		log.Printf("[ERROR] MarkAllRead notifications handler: %v", err)
		httputil.WriteInternalError(w, "Failed to mark notifications as read")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Notifications marked as read",
	})
}

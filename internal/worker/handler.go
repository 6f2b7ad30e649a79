package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/queue"
)

// NotificationStore defines the one write the worker needs. It abstracts the
// repository layer so the worker doesn't depend on the DB directly.
type NotificationStore interface {
	Create(ctx context.Context, recipient, actor, notifType string, postID *int64) error
}

// Handler turns interaction events from the queue into notification rows.
type Handler struct {
	store NotificationStore
}

// NewHandler creates a new event handler.
func NewHandler(store NotificationStore) *Handler {
	return &Handler{store: store}
}

// HandleEvent routes an event to the appropriate handler based on type.
func (h *Handler) HandleEvent(ctx context.Context, event queue.InteractionEvent) error {
	startTime := time.Now()

	// Self-interactions carry no news for anyone. Publishers already skip
	// them, but replayed or hand-crafted stream entries shouldn't notify.
	if event.Actor == event.Target {
		return nil
	}

	var err error
	switch event.Type {
	case queue.EventUserFollowed:
		err = h.store.Create(ctx, event.Target, event.Actor, model.NotifTypeFollow, nil)
	case queue.EventPostLiked:
		postID := event.PostID
		err = h.store.Create(ctx, event.Target, event.Actor, model.NotifTypeLike, &postID)
	case queue.EventPostShared:
		postID := event.PostID
		err = h.store.Create(ctx, event.Target, event.Actor, model.NotifTypeShare, &postID)
	default:
		log.Printf("[Worker] Unknown event type: %s", event.Type)
		return fmt.Errorf("unknown event type: %s", event.Type)
	}

	if err != nil {
		log.Printf("[Worker] HandleEvent FAILED: type=%s event=%s duration=%v err=%v",
			event.Type, event.EventID, time.Since(startTime), err)
		return err
	}

	log.Printf("[Worker] HandleEvent OK: type=%s event=%s actor=%s target=%s duration=%v",
		event.Type, event.EventID, event.Actor, event.Target, time.Since(startTime))
	return nil
}

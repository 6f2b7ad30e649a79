package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types for the interaction stream
const (
	EventUserFollowed = "user_followed"
	EventPostLiked    = "post_liked"
	EventPostShared   = "post_shared"
)

// Stream names
const (
	StreamInteractions = "stream:interactions"
)

// Consumer group name for notification workers
const (
	ConsumerGroupNotifications = "notification_workers"
)

// InteractionEvent represents an interaction published to the stream after
// the corresponding edge write. All interaction events share this structure.
type InteractionEvent struct {
	EventID   string `json:"event_id"`  // Unique id for tracing/dedup across redeliveries
	Type      string `json:"type"`      // EventUserFollowed, EventPostLiked, EventPostShared
	Timestamp int64  `json:"timestamp"` // Unix timestamp when the event occurred

	Actor  string `json:"actor"`  // Who followed/liked/shared
	Target string `json:"target"` // Who is notified (followee or post author)

	// Post events only
	PostID int64 `json:"post_id,omitempty"`
}

// NewUserFollowedEvent creates an event for when a user follows another.
// The worker records a notification for the followee.
func NewUserFollowedEvent(follower, followee string) InteractionEvent {
	return InteractionEvent{
		EventID:   uuid.NewString(),
		Type:      EventUserFollowed,
		Timestamp: time.Now().Unix(),
		Actor:     follower,
		Target:    followee,
	}
}

// NewPostInteractionEvent creates a like/share event. The worker records a
// notification for the post's author.
func NewPostInteractionEvent(eventType, actor, author string, postID int64) InteractionEvent {
	return InteractionEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Actor:     actor,
		Target:    author,
		PostID:    postID,
	}
}

// ToMap converts the event to a map for Redis XADD.
// Redis Streams store field-value pairs, so we serialize to JSON in a "data" field.
func (e InteractionEvent) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return map[string]interface{}{
		"type": e.Type,
		"data": string(data),
	}, nil
}

// ParseInteractionEvent parses an InteractionEvent from Redis stream message values.
func ParseInteractionEvent(values map[string]interface{}) (InteractionEvent, error) {
	data, ok := values["data"].(string)
	if !ok {
		return InteractionEvent{}, fmt.Errorf("missing or invalid 'data' field")
	}

	var event InteractionEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return InteractionEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return event, nil
}

package model

import "time"

// Notification types
const (
	NotifTypeFollow = "follow"
	NotifTypeLike   = "like"
	NotifTypeShare  = "share"
)

// Notification is an in-app notification produced by the worker from
// interaction events. PostID is nil for follow notifications.
type Notification struct {
	ID        int64     `db:"id" json:"id"`
	Recipient string    `db:"recipient" json:"-"`
	Actor     string    `db:"actor" json:"actor"`
	ActorName string    `db:"actor_name" json:"actorName"`
	Type      string    `db:"type" json:"type"`
	PostID    *int64    `db:"post_id" json:"postId,omitempty"`
	IsRead    bool      `db:"is_read" json:"isRead"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NotificationList is the notifications endpoint response.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}

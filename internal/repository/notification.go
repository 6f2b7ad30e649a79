package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sociagram_22520074/internal/model"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create inserts a new notification.
func (r *notificationRepository) Create(ctx context.Context, recipient, actor, notifType string, postID *int64) error {
	query := `
		INSERT INTO notifications (recipient, actor, type, post_id)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, recipient, actor, notifType, postID)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetRecent returns the newest notifications with the actor's display name
// joined in, plus the recipient's total unread count.
func (r *notificationRepository) GetRecent(ctx context.Context, recipient string, limit int) ([]model.Notification, int, error) {
	query := `
		SELECT n.id, n.recipient, n.actor, u.name AS actor_name, n.type,
		       n.post_id, n.is_read, n.created_at
		FROM notifications n
		JOIN users u ON u.username = n.actor
		WHERE n.recipient = $1
		ORDER BY n.created_at DESC, n.id DESC
		LIMIT $2
	`

	var notifications []model.Notification
	err := r.db.SelectContext(ctx, &notifications, query, recipient, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("get notifications: %w", err)
	}

	var unread int
	err = r.db.GetContext(ctx, &unread,
		`SELECT COUNT(*) FROM notifications WHERE recipient = $1 AND is_read = false`, recipient)
	if err != nil {
		return nil, 0, fmt.Errorf("get unread count: %w", err)
	}

	return notifications, unread, nil
}

// MarkAllAsRead marks all notifications for a recipient as read.
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, recipient string) error {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE recipient = $1 AND is_read = false
	`
	_, err := r.db.ExecContext(ctx, query, recipient)
	if err != nil {
		return fmt.Errorf("mark all notifications as read: %w", err)
	}
	return nil
}

package service

import (
	"context"

	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/repository"
)

const notificationPageSize = 30

// NotificationService reads the in-app notifications the worker produces
// from interaction events.
type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// GetRecent returns the newest notifications plus the unread count.
func (s *NotificationService) GetRecent(ctx context.Context, username string) (*model.NotificationList, error) {
	notifications, unread, err := s.repo.GetRecent(ctx, username, notificationPageSize)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}

	return &model.NotificationList{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkAllRead clears the unread state for a user.
func (s *NotificationService) MarkAllRead(ctx context.Context, username string) error {
	return s.repo.MarkAllAsRead(ctx, username)
}

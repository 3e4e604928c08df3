package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
)

type notificationService struct {
	notifications repository.NotificationRepo
}

func NewNotificationService(notifications repository.NotificationRepo) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) Notify(ctx context.Context, userID, text string) error {
	if userID == "" {
		return nil
	}
	return s.notifications.Create(ctx, &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})
}

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}

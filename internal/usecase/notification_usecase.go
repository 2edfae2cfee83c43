package usecase

import (
	"context"

	"devconnects/internal/domain/entity"
)

// NotificationUsecase lets a recipient read and manage their notifications.
type NotificationUsecase interface {
	List(ctx context.Context, userID string) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) (*entity.Notification, error)
	Delete(ctx context.Context, userID, notificationID string) error
}

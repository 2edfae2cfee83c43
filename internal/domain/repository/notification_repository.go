package repository

import (
	"context"
	"errors"

	"devconnects/internal/domain/entity"
)

// ErrNotificationNotFound is returned when no notification of the recipient matches.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists activity notifications.
type NotificationRepository interface {
	// Create stores n, using only the ids of n.From and n.To, and assigns ID and timestamps.
	Create(ctx context.Context, n *entity.Notification) error

	// FindByID returns the notification with from and to resolved.
	FindByID(ctx context.Context, id entity.ID) (*entity.Notification, error)

	// ListByRecipient returns the recipient's notifications, newest first.
	ListByRecipient(ctx context.Context, recipientID entity.ID) ([]*entity.Notification, error)

	// MarkRead flags the recipient's notification as read and returns it.
	MarkRead(ctx context.Context, id, recipientID entity.ID) (*entity.Notification, error)

	// Delete removes the recipient's notification.
	Delete(ctx context.Context, id, recipientID entity.ID) error
}

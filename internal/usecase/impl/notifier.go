package impl

import (
	"context"
	"log/slog"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/domain/entity"
	"devconnects/internal/domain/repository"
	"devconnects/internal/domain/service"
)

// notifier stores activity notifications and pushes them to online recipients.
type notifier struct {
	notificationRepo repository.NotificationRepository
	pusher           service.RealtimePusher
	logger           *slog.Logger
}

// record stores a notification through repo, which may be bound to a transaction.
// Self-directed activity is not recorded and yields nil.
func (n *notifier) record(ctx context.Context, repo repository.NotificationRepository, from, to entity.ID, kind entity.NotificationType) (*entity.Notification, error) {
	if from == to {
		return nil, nil
	}

	notification := &entity.Notification{
		From: entity.UserSummary{ID: from},
		To:   entity.UserSummary{ID: to},
		Type: kind,
	}
	if err := repo.Create(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// push reloads the stored notification with its users resolved and pushes it. Failures are only logged.
func (n *notifier) push(ctx context.Context, notification *entity.Notification) {
	if notification == nil {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	populated, err := n.notificationRepo.FindByID(ctx, notification.ID)
	if err != nil {
		logger.Warn("Failed to load notification for push", slog.String("notificationID", notification.ID.Hex()), slog.Any("error", err))
		populated = notification
	}

	report, err := n.pusher.PushNotification(ctx, populated)
	if err != nil {
		logger.Warn("Failed to push notification", slog.String("notificationID", notification.ID.Hex()), slog.Any("error", err))
		return
	}

	logger.Debug("Notification pushed",
		slog.String("type", string(populated.Type)),
		slog.Bool("recipientOnline", report.ReceiverOnline),
		slog.Int("delivered", report.Delivered),
	)
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/domain/entity"
	"devconnects/internal/domain/repository"
	"devconnects/internal/usecase"

	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationService) List(ctx context.Context, userID string) ([]*entity.Notification, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	notifications, err := srv.notificationRepo.ListByRecipient(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead only matches notifications addressed to userID; anything else reads as not found.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID string) (*entity.Notification, error) {
	recipient, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(notificationID)
	if err != nil {
		return nil, err
	}

	notification, err := srv.notificationRepo.MarkRead(ctx, id, recipient)
	if err != nil {
		return nil, mapRepoError(err, "failed to mark notification read")
	}

	return notification, nil
}

func (srv *notificationService) Delete(ctx context.Context, userID, notificationID string) error {
	recipient, err := parseUserID(userID)
	if err != nil {
		return err
	}
	id, err := parseID(notificationID)
	if err != nil {
		return err
	}

	if err := srv.notificationRepo.Delete(ctx, id, recipient); err != nil {
		return mapRepoError(err, "failed to delete notification")
	}

	srv.log(ctx).Debug("Notification deleted", slog.String("notificationID", notificationID))

	return nil
}

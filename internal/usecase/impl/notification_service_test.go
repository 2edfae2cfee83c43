package impl

import (
	"context"
	"testing"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	mockRepo "devconnects/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_List(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	srv := NewNotificationService(NotificationServiceParams{NotificationRepo: repo, Logger: discardLogger()})
	ctx := context.Background()
	user := entity.NewID()
	notifications := []*entity.Notification{{ID: entity.NewID(), Type: entity.NotificationLike}}

	repo.EXPECT().ListByRecipient(ctx, user).Return(notifications, nil)

	got, err := srv.List(ctx, user.Hex())

	require.NoError(t, err)
	assert.Equal(t, notifications, got)
}

func TestNotificationService_MarkRead_ScopedToRecipient(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	srv := NewNotificationService(NotificationServiceParams{NotificationRepo: repo, Logger: discardLogger()})
	ctx := context.Background()
	user, id := entity.NewID(), entity.NewID()

	repo.EXPECT().MarkRead(ctx, id, user).Return(nil, repository.ErrNotificationNotFound)

	_, err := srv.MarkRead(ctx, user.Hex(), id.Hex())

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_Delete(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	srv := NewNotificationService(NotificationServiceParams{NotificationRepo: repo, Logger: discardLogger()})
	ctx := context.Background()
	user, id := entity.NewID(), entity.NewID()

	repo.EXPECT().Delete(ctx, id, user).Return(nil)

	require.NoError(t, srv.Delete(ctx, user.Hex(), id.Hex()))
}

func TestNotificationService_InvalidIDs(t *testing.T) {
	srv := NewNotificationService(NotificationServiceParams{
		NotificationRepo: mockRepo.NewMockNotificationRepository(t),
		Logger:           discardLogger(),
	})
	ctx := context.Background()

	_, err := srv.MarkRead(ctx, "me", entity.NewID().Hex())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentity)

	err = srv.Delete(ctx, entity.NewID().Hex(), "n-1")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}

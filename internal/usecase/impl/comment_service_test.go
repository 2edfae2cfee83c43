package impl

import (
	"context"
	"testing"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	"devconnects/internal/domain/service"
	mockRepo "devconnects/internal/mocks/repository"
	mockSvc "devconnects/internal/mocks/service"
	"devconnects/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceFixtures struct {
	service          usecase.CommentUsecase
	txManager        *mockRepo.MockTransactionManager
	commentRepo      *mockRepo.MockCommentRepository
	postRepo         *mockRepo.MockPostRepository
	notificationRepo *mockRepo.MockNotificationRepository
	pusher           *mockSvc.MockRealtimePusher
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	pusher := mockSvc.NewMockRealtimePusher(t)

	return commentServiceFixtures{
		service: NewCommentService(CommentServiceParams{
			TxManager:        txManager,
			CommentRepo:      commentRepo,
			PostRepo:         postRepo,
			NotificationRepo: notificationRepo,
			Sanitizer:        trimSanitizer(t),
			Pusher:           pusher,
			Logger:           discardLogger(),
		}),
		txManager:        txManager,
		commentRepo:      commentRepo,
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

func TestCommentService_Create_LinksPostAndNotifies(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	author, commenter := entity.NewID(), entity.NewID()
	post := &entity.Post{ID: entity.NewID(), Author: entity.UserSummary{ID: author}}
	commentID := entity.NewID()

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txCommentRepo := mockRepo.NewMockCommentRepository(t)
	txPostRepo := mockRepo.NewMockPostRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	txFactory.EXPECT().CommentRepo().Return(txCommentRepo)
	txFactory.EXPECT().PostRepo().Return(txPostRepo)
	txFactory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	txCommentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(_ context.Context, c *entity.Comment) {
			assert.Equal(t, "nice post", c.Text)
			assert.Equal(t, post.ID, c.PostID)
			c.ID = commentID
		}).
		Return(nil)
	txPostRepo.EXPECT().AddComment(ctx, post.ID, commentID).Return(nil)
	txNotificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) {
			assert.Equal(t, entity.NotificationComment, n.Type)
			assert.Equal(t, author, n.To.ID)
		}).
		Return(nil)
	runInTx(fx.txManager, txFactory)

	fx.notificationRepo.EXPECT().FindByID(ctx, mock.Anything).Return(nil, repository.ErrNotificationNotFound)
	fx.pusher.EXPECT().PushNotification(ctx, mock.Anything).Return(service.PushReport{}, nil)

	populated := &entity.Comment{ID: commentID, User: entity.UserSummary{ID: commenter, Name: "Grace"}, Text: "nice post"}
	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(populated, nil)

	got, err := fx.service.Create(ctx, commenter.Hex(), post.ID.Hex(), " nice post ")

	require.NoError(t, err)
	assert.Same(t, populated, got)
}

func TestCommentService_Create_Rejections(t *testing.T) {
	t.Run("blank text", func(t *testing.T) {
		fx := createTestCommentService(t)

		_, err := fx.service.Create(context.Background(), entity.NewID().Hex(), entity.NewID().Hex(), "  ")

		assert.ErrorIs(t, err, domainerrors.ErrTextRequired)
	})

	t.Run("missing post", func(t *testing.T) {
		fx := createTestCommentService(t)
		postID := entity.NewID()
		fx.postRepo.EXPECT().FindByID(mock.Anything, postID).Return(nil, repository.ErrPostNotFound)

		_, err := fx.service.Create(context.Background(), entity.NewID().Hex(), postID.Hex(), "hi")

		assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})

	t.Run("invalid post id", func(t *testing.T) {
		fx := createTestCommentService(t)

		_, err := fx.service.Create(context.Background(), entity.NewID().Hex(), "post", "hi")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
	})
}

func TestCommentService_List(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	postID := entity.NewID()
	comments := []*entity.Comment{{ID: entity.NewID(), Text: "first"}}

	fx.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID}, nil)
	fx.commentRepo.EXPECT().ListByPost(ctx, postID).Return(comments, nil)

	got, err := fx.service.List(ctx, postID.Hex())

	require.NoError(t, err)
	assert.Equal(t, comments, got)
}

func TestCommentService_Update(t *testing.T) {
	owner := entity.NewID()
	comment := &entity.Comment{ID: entity.NewID(), User: entity.UserSummary{ID: owner}, Text: "old"}

	t.Run("owner", func(t *testing.T) {
		fx := createTestCommentService(t)
		updated := &entity.Comment{ID: comment.ID, Text: "new"}
		fx.commentRepo.EXPECT().FindByID(mock.Anything, comment.ID).Return(comment, nil)
		fx.commentRepo.EXPECT().UpdateText(mock.Anything, comment.ID, "new").Return(updated, nil)

		got, err := fx.service.Update(context.Background(), owner.Hex(), comment.ID.Hex(), " new ")

		require.NoError(t, err)
		assert.Same(t, updated, got)
	})

	t.Run("someone else", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.commentRepo.EXPECT().FindByID(mock.Anything, comment.ID).Return(comment, nil)

		_, err := fx.service.Update(context.Background(), entity.NewID().Hex(), comment.ID.Hex(), "new")

		assert.ErrorIs(t, err, domainerrors.ErrNotCommentOwner)
	})
}

func TestCommentService_Delete_ToleratesRemovedPost(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	owner := entity.NewID()
	comment := &entity.Comment{ID: entity.NewID(), User: entity.UserSummary{ID: owner}, PostID: entity.NewID()}

	fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)

	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txCommentRepo := mockRepo.NewMockCommentRepository(t)
	txPostRepo := mockRepo.NewMockPostRepository(t)
	txFactory.EXPECT().CommentRepo().Return(txCommentRepo)
	txFactory.EXPECT().PostRepo().Return(txPostRepo)
	txCommentRepo.EXPECT().Delete(ctx, comment.ID).Return(nil)
	txPostRepo.EXPECT().RemoveComment(ctx, comment.PostID, comment.ID).Return(repository.ErrPostNotFound)
	runInTx(fx.txManager, txFactory)

	require.NoError(t, fx.service.Delete(ctx, owner.Hex(), comment.ID.Hex()))
}

func TestCommentService_Delete_NotOwner(t *testing.T) {
	fx := createTestCommentService(t)
	comment := &entity.Comment{ID: entity.NewID(), User: entity.UserSummary{ID: entity.NewID()}}

	fx.commentRepo.EXPECT().FindByID(mock.Anything, comment.ID).Return(comment, nil)

	err := fx.service.Delete(context.Background(), entity.NewID().Hex(), comment.ID.Hex())

	assert.ErrorIs(t, err, domainerrors.ErrNotCommentOwner)
}

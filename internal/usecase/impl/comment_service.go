package impl

import (
	"context"
	"log/slog"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	"devconnects/internal/domain/service"
	"devconnects/internal/errors"
	"devconnects/internal/usecase"

	"go.uber.org/fx"
)

type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	sanitizer   service.TextSanitizer
	notifier    *notifier
	logger      *slog.Logger
}

type CommentServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	CommentRepo      repository.CommentRepository
	PostRepo         repository.PostRepository
	NotificationRepo repository.NotificationRepository
	Sanitizer        service.TextSanitizer
	Pusher           service.RealtimePusher
	Logger           *slog.Logger
}

func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		sanitizer:   params.Sanitizer,
		notifier: &notifier{
			notificationRepo: params.NotificationRepo,
			pusher:           params.Pusher,
			logger:           params.Logger,
		},
		logger: params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores the comment, links it to the post and records the author's notification in one transaction.
func (srv *commentService) Create(ctx context.Context, userID, postID, text string) (*entity.Comment, error) {
	user, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(postID)
	if err != nil {
		return nil, err
	}

	text = srv.sanitizer.Sanitize(text)
	if text == "" {
		return nil, domainerrors.ErrTextRequired
	}

	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to load post")
	}

	var (
		comment      *entity.Comment
		notification *entity.Notification
	)
	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repoFactory repository.RepositoryFactory) error {
		comment = &entity.Comment{User: entity.UserSummary{ID: user}, PostID: post.ID, Text: text}
		if err := repoFactory.CommentRepo().Create(txCtx, comment); err != nil {
			return err
		}
		if err := repoFactory.PostRepo().AddComment(txCtx, post.ID, comment.ID); err != nil {
			return err
		}

		recorded, err := srv.notifier.record(txCtx, repoFactory.NotificationRepo(), user, post.Author.ID, entity.NotificationComment)
		notification = recorded

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create comment", slog.String("postID", postID), slog.Any("error", err))

		return nil, mapRepoError(err, "failed to create comment")
	}

	srv.notifier.push(ctx, notification)

	populated, err := srv.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to reload comment", slog.String("commentID", comment.ID.Hex()), slog.Any("error", err))

		return comment, nil
	}

	return populated, nil
}

func (srv *commentService) List(ctx context.Context, postID string) ([]*entity.Comment, error) {
	id, err := parseID(postID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.postRepo.FindByID(ctx, id); err != nil {
		return nil, mapRepoError(err, "failed to load post")
	}

	comments, err := srv.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to list comments")
	}

	return comments, nil
}

// loadOwned returns the comment if userID wrote it.
func (srv *commentService) loadOwned(ctx context.Context, userID, commentID string) (*entity.Comment, error) {
	user, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(commentID)
	if err != nil {
		return nil, err
	}

	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to load comment")
	}
	if comment.User.ID != user {
		return nil, domainerrors.ErrNotCommentOwner
	}

	return comment, nil
}

func (srv *commentService) Update(ctx context.Context, userID, commentID, text string) (*entity.Comment, error) {
	comment, err := srv.loadOwned(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	text = srv.sanitizer.Sanitize(text)
	if text == "" {
		return nil, domainerrors.ErrTextRequired
	}

	updated, err := srv.commentRepo.UpdateText(ctx, comment.ID, text)
	if err != nil {
		return nil, mapRepoError(err, "failed to update comment")
	}

	return updated, nil
}

// Delete removes the comment and its reference on the post. A post deleted in the meantime is not an error.
func (srv *commentService) Delete(ctx context.Context, userID, commentID string) error {
	comment, err := srv.loadOwned(ctx, userID, commentID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CommentRepo().Delete(txCtx, comment.ID); err != nil {
			return err
		}

		err := repoFactory.PostRepo().RemoveComment(txCtx, comment.PostID, comment.ID)
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil
		}

		return err
	})
	if err != nil {
		return mapRepoError(err, "failed to delete comment")
	}

	return nil
}

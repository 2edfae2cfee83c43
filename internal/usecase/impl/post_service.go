package impl

import (
	"context"
	"log/slog"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	"devconnects/internal/domain/service"
	"devconnects/internal/usecase"

	"go.uber.org/fx"
)

type postService struct {
	postRepo  repository.PostRepository
	sanitizer service.TextSanitizer
	notifier  *notifier
	logger    *slog.Logger
}

type PostServiceParams struct {
	fx.In

	PostRepo         repository.PostRepository
	NotificationRepo repository.NotificationRepository
	Sanitizer        service.TextSanitizer
	Pusher           service.RealtimePusher
	Logger           *slog.Logger
}

func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo:  params.PostRepo,
		sanitizer: params.Sanitizer,
		notifier: &notifier{
			notificationRepo: params.NotificationRepo,
			pusher:           params.Pusher,
			logger:           params.Logger,
		},
		logger: params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *postService) Create(ctx context.Context, authorID string, input *usecase.CreatePostInput) (*entity.Post, error) {
	author, err := parseUserID(authorID)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Author:  entity.UserSummary{ID: author},
		Title:   srv.sanitizer.Sanitize(input.Title),
		Content: srv.sanitizer.Sanitize(input.Content),
		Images:  input.Images,
	}
	if post.Title == "" || post.Content == "" {
		return nil, domainerrors.ErrMissingFields
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, mapRepoError(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.String("postID", post.ID.Hex()), slog.String("authorID", authorID))

	return srv.reload(ctx, post)
}

// reload returns the stored post with its author resolved, or post itself if the lookup fails.
func (srv *postService) reload(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	populated, err := srv.postRepo.FindByID(ctx, post.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to reload post", slog.String("postID", post.ID.Hex()), slog.Any("error", err))

		return post, nil
	}

	return populated, nil
}

func (srv *postService) List(ctx context.Context, query *usecase.PostQuery) (*usecase.PostPage, error) {
	var filter entity.PostFilter
	if query.AuthorID != "" {
		id, err := parseUserID(query.AuthorID)
		if err != nil {
			return nil, err
		}
		filter.AuthorID = id
	}
	if query.LikedBy != "" {
		id, err := parseUserID(query.LikedBy)
		if err != nil {
			return nil, err
		}
		filter.LikedBy = id
	}

	page := entity.PageRequest{Page: query.Page, Limit: query.Limit}
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = usecase.DefaultPageLimit
	}
	if page.Limit > usecase.MaxPageLimit {
		page.Limit = usecase.MaxPageLimit
	}

	posts, total, err := srv.postRepo.List(ctx, filter, page)
	if err != nil {
		return nil, mapRepoError(err, "failed to list posts")
	}

	return &usecase.PostPage{
		CurrentPage: page.Page,
		TotalPages:  int((total + int64(page.Limit) - 1) / int64(page.Limit)),
		Count:       total,
		Posts:       posts,
	}, nil
}

// loadOwned returns the post if userID authored it.
func (srv *postService) loadOwned(ctx context.Context, userID, postID string) (*entity.Post, error) {
	user, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(postID)
	if err != nil {
		return nil, err
	}

	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to load post")
	}
	if post.Author.ID != user {
		srv.log(ctx).Warn("Post change by non-author", slog.String("postID", postID), slog.String("userID", userID))

		return nil, domainerrors.ErrNotPostAuthor
	}

	return post, nil
}

func (srv *postService) Update(ctx context.Context, userID, postID string, input *usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.loadOwned(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = srv.sanitizer.Sanitize(*input.Title)
	}
	if input.Content != nil {
		post.Content = srv.sanitizer.Sanitize(*input.Content)
	}
	if input.Images != nil {
		post.Images = input.Images
	}
	if post.Title == "" || post.Content == "" {
		return nil, domainerrors.ErrMissingFields
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, mapRepoError(err, "failed to update post")
	}

	return srv.reload(ctx, post)
}

func (srv *postService) Delete(ctx context.Context, userID, postID string) error {
	post, err := srv.loadOwned(ctx, userID, postID)
	if err != nil {
		return err
	}

	if err := srv.postRepo.Delete(ctx, post.ID); err != nil {
		return mapRepoError(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.String("postID", postID))

	return nil
}

// ToggleLike notifies the author when the toggle results in a like by someone else.
func (srv *postService) ToggleLike(ctx context.Context, userID, postID string) (*usecase.LikeOutput, error) {
	user, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(postID)
	if err != nil {
		return nil, err
	}

	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to load post")
	}

	likes, liked, err := srv.postRepo.ToggleLike(ctx, id, user)
	if err != nil {
		return nil, mapRepoError(err, "failed to toggle like")
	}

	if liked {
		notification, err := srv.notifier.record(ctx, srv.notifier.notificationRepo, user, post.Author.ID, entity.NotificationLike)
		if err != nil {
			srv.log(ctx).Warn("Failed to record like notification", slog.String("postID", postID), slog.Any("error", err))
		} else {
			srv.notifier.push(ctx, notification)
		}
	}

	return &usecase.LikeOutput{Liked: liked, LikesCount: len(likes), Likes: likes}, nil
}

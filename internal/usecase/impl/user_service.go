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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	sanitizer service.TextSanitizer
	notifier  *notifier
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Sanitizer        service.TextSanitizer
	Pusher           service.RealtimePusher
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		sanitizer: params.Sanitizer,
		notifier: &notifier{
			notificationRepo: params.NotificationRepo,
			pusher:           params.Pusher,
			logger:           params.Logger,
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadPair validates a follow edge and loads both ends.
func (srv *userService) loadPair(ctx context.Context, followerID, targetID string, selfErr error) (*entity.User, *entity.User, error) {
	follower, err := parseUserID(followerID)
	if err != nil {
		return nil, nil, err
	}
	target, err := parseUserID(targetID)
	if err != nil {
		return nil, nil, err
	}
	if follower == target {
		return nil, nil, selfErr
	}

	followerUser, err := srv.userRepo.FindByID(ctx, follower)
	if err != nil {
		return nil, nil, mapRepoError(err, "failed to load follower")
	}
	targetUser, err := srv.userRepo.FindByID(ctx, target)
	if err != nil {
		return nil, nil, mapRepoError(err, "failed to load target user")
	}

	return followerUser, targetUser, nil
}

func (srv *userService) Follow(ctx context.Context, followerID, targetID string) error {
	follower, target, err := srv.loadPair(ctx, followerID, targetID, domainerrors.ErrSelfFollow)
	if err != nil {
		return err
	}
	if follower.IsFollowing(target.ID) {
		return domainerrors.ErrAlreadyFollowing
	}

	var notification *entity.Notification
	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Follow(txCtx, follower.ID, target.ID); err != nil {
			return err
		}

		recorded, err := srv.notifier.record(txCtx, repoFactory.NotificationRepo(), follower.ID, target.ID, entity.NotificationFollow)
		notification = recorded

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to follow user", slog.String("followerID", followerID), slog.String("targetID", targetID), slog.Any("error", err))

		return mapRepoError(err, "failed to follow user")
	}

	srv.notifier.push(ctx, notification)

	return nil
}

func (srv *userService) Unfollow(ctx context.Context, followerID, targetID string) error {
	follower, target, err := srv.loadPair(ctx, followerID, targetID, domainerrors.ErrSelfUnfollow)
	if err != nil {
		return err
	}
	if !follower.IsFollowing(target.ID) {
		return domainerrors.ErrNotFollowing
	}

	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Unfollow(txCtx, follower.ID, target.ID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to unfollow user", slog.String("followerID", followerID), slog.String("targetID", targetID), slog.Any("error", err))

		return mapRepoError(err, "failed to unfollow user")
	}

	return nil
}

func (srv *userService) Suggested(ctx context.Context, userID string) ([]*entity.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to load user")
	}

	exclude := append([]entity.ID{user.ID}, user.Following...)
	users, err := srv.userRepo.List(ctx, exclude)
	if err != nil {
		return nil, mapRepoError(err, "failed to list suggested users")
	}

	return users, nil
}

func (srv *userService) Connections(ctx context.Context, userID string) (*usecase.ConnectionsOutput, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.ConnectionsOutput{Followers: profile.Followers, Following: profile.Following}, nil
}

// UpdateProfile strips markup from every free text field before storing it.
func (srv *userService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	update := &entity.ProfileUpdate{
		Avatar:   srv.sanitizePtr(input.Avatar),
		About:    srv.sanitizePtr(input.About),
		Location: srv.sanitizePtr(input.Location),
		LinkedIn: srv.sanitizePtr(input.LinkedIn),
		GitHub:   srv.sanitizePtr(input.GitHub),
		Website:  srv.sanitizePtr(input.Website),
	}
	if input.Experience != nil {
		update.Experience = make([]entity.Experience, 0, len(input.Experience))
		for _, e := range input.Experience {
			e.Title = srv.sanitizer.Sanitize(e.Title)
			e.Company = srv.sanitizer.Sanitize(e.Company)
			e.Description = srv.sanitizer.Sanitize(e.Description)
			update.Experience = append(update.Experience, e)
		}
	}

	user, err := srv.userRepo.UpdateProfile(ctx, id, update)
	if err != nil {
		return nil, mapRepoError(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.String("userID", userID))

	return user, nil
}

func (srv *userService) sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := srv.sanitizer.Sanitize(*s)

	return &clean
}

func (srv *userService) GetProfile(ctx context.Context, userID string) (*usecase.UserProfile, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to load user")
	}

	return resolveProfile(ctx, srv.userRepo, user)
}

func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserProfile, error) {
	users, err := srv.userRepo.List(ctx, nil)
	if err != nil {
		return nil, mapRepoError(err, "failed to list users")
	}

	return resolveProfiles(ctx, srv.userRepo, users)
}

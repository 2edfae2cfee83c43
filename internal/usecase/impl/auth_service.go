package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	"devconnects/internal/domain/service"
	"devconnects/internal/errors"
	"devconnects/internal/usecase"

	"go.uber.org/fx"
)

const minPasswordLength = 6

type authService struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PostRepo     repository.PostRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		postRepo:     params.PostRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" || input.DOB.IsZero() {
		return nil, domainerrors.ErrMissingFields
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 6 characters")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		DOB:          input.DOB,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			srv.log(ctx).Info("Registration with taken email or name", slog.String("email", email))
		}

		return nil, mapRepoError(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.Hex()))

	return user, nil
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapRepoError(err, "failed to find user for login")
	}
	// Accounts created through a third-party provider carry no password.
	if user.PasswordHash == "" {
		return nil, domainerrors.ErrUserNotFound
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with invalid password", slog.String("userID", user.ID.Hex()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, claims, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.String("userID", user.ID.Hex()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		User:      user,
	}, nil
}

func (srv *authService) Profile(ctx context.Context, userID string) (*usecase.ProfileOutput, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to load profile")
	}

	profile, err := resolveProfile(ctx, srv.userRepo, user)
	if err != nil {
		return nil, err
	}

	posts, _, err := srv.postRepo.List(ctx, entity.PostFilter{AuthorID: id}, entity.PageRequest{})
	if err != nil {
		return nil, mapRepoError(err, "failed to load profile posts")
	}

	return &usecase.ProfileOutput{User: profile, Posts: posts}, nil
}

// resolveProfile resolves the follow lists of a single user.
func resolveProfile(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (*usecase.UserProfile, error) {
	profiles, err := resolveProfiles(ctx, userRepo, []*entity.User{user})
	if err != nil {
		return nil, err
	}

	return profiles[0], nil
}

// resolveProfiles resolves the follow lists of every user with one summary lookup.
func resolveProfiles(ctx context.Context, userRepo repository.UserRepository, users []*entity.User) ([]*usecase.UserProfile, error) {
	var ids []entity.ID
	for _, u := range users {
		ids = append(ids, u.Followers...)
		ids = append(ids, u.Following...)
	}

	byID := make(map[entity.ID]entity.UserSummary, len(ids))
	if len(ids) > 0 {
		summaries, err := userRepo.FindSummaries(ctx, ids)
		if err != nil {
			return nil, mapRepoError(err, "failed to resolve follow lists")
		}
		for _, s := range summaries {
			byID[s.ID] = s
		}
	}

	resolve := func(ids []entity.ID) []entity.UserSummary {
		out := make([]entity.UserSummary, 0, len(ids))
		for _, id := range ids {
			if s, ok := byID[id]; ok {
				out = append(out, s)
			}
		}
		return out
	}

	profiles := make([]*usecase.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, &usecase.UserProfile{
			User:      u,
			Followers: resolve(u.Followers),
			Following: resolve(u.Following),
		})
	}

	return profiles, nil
}

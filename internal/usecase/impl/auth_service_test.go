package impl

import (
	"context"
	"testing"
	"time"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	mockRepo "devconnects/internal/mocks/repository"
	mockSvc "devconnects/internal/mocks/service"
	"devconnects/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	postRepo     *mockRepo.MockPostRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			PostRepo:     postRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       discardLogger(),
		}),
		userRepo:     userRepo,
		postRepo:     postRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:     "Ada",
		Email:    "  Ada@Example.com ",
		Password: "secret1",
		DOB:      time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = entity.NewID()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.False(t, user.ID.IsZero())
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
		want   error
	}{
		{name: "missing name", mutate: func(in *usecase.RegisterInput) { in.Name = " " }, want: domainerrors.ErrMissingFields},
		{name: "missing email", mutate: func(in *usecase.RegisterInput) { in.Email = "" }, want: domainerrors.ErrMissingFields},
		{name: "missing dob", mutate: func(in *usecase.RegisterInput) { in.DOB = time.Time{} }, want: domainerrors.ErrMissingFields},
		{name: "short password", mutate: func(in *usecase.RegisterInput) { in.Password = "12345" }, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			input := validRegisterInput()
			tt.mutate(input)

			_, err := fx.service.Register(context.Background(), input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUser)

	_, err := fx.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("password too long"))

	_, err := fx.service.Register(context.Background(), validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: entity.NewID(), Email: "ada@example.com", PasswordHash: "hashed"}
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().Issue(user).Return("signed", &entity.SessionClaims{UserID: user.ID.Hex(), ExpiresAt: expires}, nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, expires, out.ExpiresAt)
	assert.Same(t, user, out.User)
}

func TestAuthService_Login_Failures(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.c"})

		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.c").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.c", Password: "pw"})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.c").Return(&entity.User{ID: entity.NewID(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("pw", "hashed").Return(false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.c", Password: "pw"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Profile_ResolvesFollowListsOnce(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	follower, followee := entity.NewID(), entity.NewID()
	user := &entity.User{ID: entity.NewID(), Name: "Ada", Followers: []entity.ID{follower}, Following: []entity.ID{followee}}
	posts := []*entity.Post{{ID: entity.NewID(), Title: "hello"}}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().
		FindSummaries(ctx, []entity.ID{follower, followee}).
		Return([]entity.UserSummary{{ID: follower, Name: "Grace"}, {ID: followee, Name: "Linus"}}, nil).
		Once()
	fx.postRepo.EXPECT().List(ctx, entity.PostFilter{AuthorID: user.ID}, entity.PageRequest{}).Return(posts, int64(1), nil)

	out, err := fx.service.Profile(ctx, user.ID.Hex())

	require.NoError(t, err)
	assert.Equal(t, "Ada", out.User.Name)
	assert.Equal(t, []entity.UserSummary{{ID: follower, Name: "Grace"}}, out.User.Followers)
	assert.Equal(t, []entity.UserSummary{{ID: followee, Name: "Linus"}}, out.User.Following)
	assert.Equal(t, posts, out.Posts)
}

func TestAuthService_Profile_InvalidIdentity(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Profile(context.Background(), "zzz")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentity)
}

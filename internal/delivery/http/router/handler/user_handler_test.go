package handler

import (
	"net/http"
	"testing"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	mockUC "devconnects/internal/mocks/usecase"
	"devconnects/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	e      *echo.Echo
	userUC *mockUC.MockUserUsecase
	userID string
}

func createTestUserHandler(t *testing.T) *userHandlerFixtures {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: discardLogger()})
	userID := entity.NewID().Hex()
	auth := asUser(userID)

	e := newTestEcho()
	e.GET("/api/user", h.ListUsers, auth)
	e.GET("/api/user/suggested", h.Suggested, auth)
	e.GET("/api/user/followers", h.Connections, auth)
	e.PUT("/api/user/profile/update", h.UpdateProfile, auth)
	e.POST("/api/user/:targetUser/follow", h.Follow, auth)
	e.DELETE("/api/user/:targetUser/unfollow", h.Unfollow, auth)
	e.GET("/api/user/:id", h.GetProfile)

	return &userHandlerFixtures{e: e, userUC: userUC, userID: userID}
}

func TestUserHandler_Follow(t *testing.T) {
	target := entity.NewID().Hex()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "followed", wantStatus: http.StatusOK},
		{name: "self", err: domainerrors.ErrSelfFollow, wantStatus: http.StatusBadRequest},
		{name: "already following", err: domainerrors.ErrAlreadyFollowing, wantStatus: http.StatusBadRequest},
		{name: "unknown user", err: domainerrors.ErrUserNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserHandler(t)
			f.userUC.EXPECT().Follow(mock.Anything, f.userID, target).Return(tt.err)

			rec := serve(f.e, http.MethodPost, "/api/user/"+target+"/follow", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.err == nil, decode(t, rec)["success"])
		})
	}
}

func TestUserHandler_Unfollow(t *testing.T) {
	f := createTestUserHandler(t)
	target := entity.NewID().Hex()
	f.userUC.EXPECT().Unfollow(mock.Anything, f.userID, target).Return(domainerrors.ErrNotFollowing)

	rec := serve(f.e, http.MethodDelete, "/api/user/"+target+"/unfollow", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You are not following this user", decode(t, rec)["message"])
}

func TestUserHandler_Connections(t *testing.T) {
	f := createTestUserHandler(t)
	f.userUC.EXPECT().Connections(mock.Anything, f.userID).Return(&usecase.ConnectionsOutput{
		Followers: []entity.UserSummary{{Name: "Bob"}},
		Following: []entity.UserSummary{},
	}, nil)

	rec := serve(f.e, http.MethodGet, "/api/user/followers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Len(t, body["followers"], 1)
	assert.Empty(t, body["following"])
}

func TestUserHandler_UpdateProfileKeepsAbsentFields(t *testing.T) {
	f := createTestUserHandler(t)
	f.userUC.EXPECT().UpdateProfile(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.About != nil && *in.About == "Gopher" &&
			in.Website != nil && *in.Website == "" &&
			in.Location == nil && in.Experience == nil
	})).Return(&entity.User{Name: "Ada", About: "Gopher"}, nil)

	rec := serve(f.e, http.MethodPut, "/api/user/profile/update", `{"about":"Gopher","website":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Gopher", decode(t, rec)["user"].(map[string]any)["about"])
}

func TestUserHandler_PublicProfileAndListing(t *testing.T) {
	f := createTestUserHandler(t)
	other := entity.NewID().Hex()
	f.userUC.EXPECT().GetProfile(mock.Anything, other).Return(&usecase.UserProfile{User: &entity.User{Name: "Bob"}}, nil)
	f.userUC.EXPECT().Suggested(mock.Anything, f.userID).Return([]*entity.User{{Name: "Carol"}}, nil)
	f.userUC.EXPECT().ListUsers(mock.Anything).Return([]*usecase.UserProfile{}, nil)

	rec := serve(f.e, http.MethodGet, "/api/user/"+other, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bob", decode(t, rec)["user"].(map[string]any)["name"])

	rec = serve(f.e, http.MethodGet, "/api/user/suggested", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["users"], 1)

	rec = serve(f.e, http.MethodGet, "/api/user", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["users"])
}

package handler

import (
	"net/http"
	"testing"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	mockUC "devconnects/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentHandlerFixtures struct {
	e         *echo.Echo
	commentUC *mockUC.MockCommentUsecase
	userID    string
}

func createTestCommentHandler(t *testing.T) *commentHandlerFixtures {
	commentUC := mockUC.NewMockCommentUsecase(t)
	h := NewCommentHandler(CommentHandlerParams{CommentUC: commentUC})
	userID := entity.NewID().Hex()
	auth := asUser(userID)

	e := newTestEcho()
	e.POST("/api/comment/:postId", h.Create, auth)
	e.GET("/api/comment/:postId", h.List)
	e.PUT("/api/comment/:commentId", h.Update, auth)
	e.DELETE("/api/comment/:commentId", h.Delete, auth)

	return &commentHandlerFixtures{e: e, commentUC: commentUC, userID: userID}
}

func TestCommentHandler_Create(t *testing.T) {
	f := createTestCommentHandler(t)
	postID := entity.NewID().Hex()
	f.commentUC.EXPECT().Create(mock.Anything, f.userID, postID, "Nice post").
		Return(&entity.Comment{Text: "Nice post", User: entity.UserSummary{Name: "Ada"}}, nil)

	rec := serve(f.e, http.MethodPost, "/api/comment/"+postID, `{"text":"Nice post"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	comment := decode(t, rec)["comment"].(map[string]any)
	assert.Equal(t, "Nice post", comment["text"])
	assert.Equal(t, "Ada", comment["user"].(map[string]any)["name"])
}

func TestCommentHandler_RoutesByMethod(t *testing.T) {
	f := createTestCommentHandler(t)
	postID := entity.NewID().Hex()
	commentID := entity.NewID().Hex()
	f.commentUC.EXPECT().List(mock.Anything, postID).Return([]*entity.Comment{{Text: "a"}, {Text: "b"}}, nil)
	f.commentUC.EXPECT().Update(mock.Anything, f.userID, commentID, "edited").Return(nil, domainerrors.ErrNotCommentOwner)
	f.commentUC.EXPECT().Delete(mock.Anything, f.userID, commentID).Return(domainerrors.ErrCommentNotFound)

	rec := serve(f.e, http.MethodGet, "/api/comment/"+postID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["comments"], 2)

	rec = serve(f.e, http.MethodPut, "/api/comment/"+commentID, `{"text":"edited"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(f.e, http.MethodDelete, "/api/comment/"+commentID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

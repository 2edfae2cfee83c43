package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/delivery/http/response"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/errors"
	"devconnects/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandler serves publishing, listing and liking posts.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

type CreatePostRequest struct {
	Title   string   `json:"title" validate:"required,min=3,max=200"`
	Content string   `json:"content" validate:"required,min=10"`
	Images  []string `json:"images" validate:"omitempty,max=10,dive,url"`
}

type UpdatePostRequest struct {
	Title   *string  `json:"title" validate:"omitempty,min=3,max=200"`
	Content *string  `json:"content" validate:"omitempty,min=10"`
	Images  []string `json:"images" validate:"omitempty,max=10,dive,url"`
}

func (h *PostHandler) Create(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postUC.Create(c.Request().Context(), deliverycontext.GetUserID(c), &usecase.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Images:  req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Post created successfully", response.Payload{"post": post})
}

// List serves every post listing; the route decides which filter applies.
func (h *PostHandler) List(c echo.Context) error {
	return h.list(c, &usecase.PostQuery{})
}

func (h *PostHandler) MyPosts(c echo.Context) error {
	return h.list(c, &usecase.PostQuery{AuthorID: deliverycontext.GetUserID(c)})
}

func (h *PostHandler) MyLikes(c echo.Context) error {
	return h.list(c, &usecase.PostQuery{LikedBy: deliverycontext.GetUserID(c)})
}

func (h *PostHandler) UserPosts(c echo.Context) error {
	return h.list(c, &usecase.PostQuery{AuthorID: c.Param("id")})
}

func (h *PostHandler) UserLikes(c echo.Context) error {
	return h.list(c, &usecase.PostQuery{LikedBy: c.Param("id")})
}

func (h *PostHandler) list(c echo.Context, query *usecase.PostQuery) error {
	err := echo.QueryParamsBinder(c).
		Int("page", &query.Page).
		Int("limit", &query.Limit).
		BindError()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("page and limit must be integers")
	}

	page, err := h.postUC.List(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{
		"currentPage": page.CurrentPage,
		"totalPages":  page.TotalPages,
		"count":       page.Count,
		"posts":       page.Posts,
	})
}

func (h *PostHandler) Update(c echo.Context) error {
	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postUC.Update(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"), &usecase.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Images:  req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Post updated successfully", response.Payload{"post": post})
}

func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.postUC.Delete(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Post deleted successfully", nil)
}

func (h *PostHandler) ToggleLike(c echo.Context) error {
	output, err := h.postUC.ToggleLike(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Post unliked"
	if output.Liked {
		message = "Post liked"
	}

	return response.Success(c, http.StatusOK, message, response.Payload{
		"liked":      output.Liked,
		"likesCount": output.LikesCount,
		"likes":      output.Likes,
	})
}

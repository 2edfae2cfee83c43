package handler

import (
	"net/http"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/delivery/http/response"
	"devconnects/internal/errors"
	"devconnects/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CommentHandler struct {
	commentUC usecase.CommentUsecase
}

type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
}

func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{commentUC: params.CommentUC}
}

// CommentRequest is shared by create and update. Empty text is rejected by the usecase.
type CommentRequest struct {
	Text string `json:"text" validate:"max=2000"`
}

func (h *CommentHandler) bindText(c echo.Context) (string, error) {
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return "", response.BindingError(c, "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return "", err
	}

	return req.Text, nil
}

func (h *CommentHandler) Create(c echo.Context) error {
	text, err := h.bindText(c)
	if err != nil {
		return err
	}

	comment, err := h.commentUC.Create(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("postId"), text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Comment added", response.Payload{"comment": comment})
}

func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.commentUC.List(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"comments": comments})
}

func (h *CommentHandler) Update(c echo.Context) error {
	text, err := h.bindText(c)
	if err != nil {
		return err
	}

	comment, err := h.commentUC.Update(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("commentId"), text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Comment updated", response.Payload{"comment": comment})
}

func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.commentUC.Delete(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("commentId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Comment deleted", nil)
}

package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/delivery/http/response"
	"devconnects/internal/domain/entity"
	"devconnects/internal/errors"
	"devconnects/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandler serves the follow graph and profiles.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest leaves absent fields unchanged. An empty string clears a field.
type UpdateProfileRequest struct {
	Avatar     *string             `json:"avatar" validate:"omitempty,max=2048"`
	About      *string             `json:"about" validate:"omitempty,max=1000"`
	Location   *string             `json:"location" validate:"omitempty,max=100"`
	LinkedIn   *string             `json:"linkedin" validate:"omitempty,max=2048"`
	GitHub     *string             `json:"github" validate:"omitempty,max=2048"`
	Website    *string             `json:"website" validate:"omitempty,max=2048"`
	Experience []entity.Experience `json:"experience" validate:"omitempty,max=50"`
}

func (h *UserHandler) Follow(c echo.Context) error {
	err := h.userUC.Follow(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("targetUser"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "User followed successfully", nil)
}

func (h *UserHandler) Unfollow(c echo.Context) error {
	err := h.userUC.Unfollow(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("targetUser"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "User unfollowed successfully", nil)
}

func (h *UserHandler) Suggested(c echo.Context) error {
	users, err := h.userUC.Suggested(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"users": users})
}

func (h *UserHandler) Connections(c echo.Context) error {
	output, err := h.userUC.Connections(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{
		"followers": output.Followers,
		"following": output.Following,
	})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), deliverycontext.GetUserID(c), &usecase.UpdateProfileInput{
		Avatar:     req.Avatar,
		About:      req.About,
		Location:   req.Location,
		LinkedIn:   req.LinkedIn,
		GitHub:     req.GitHub,
		Website:    req.Website,
		Experience: req.Experience,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Profile updated successfully", response.Payload{"user": user})
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.userUC.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"user": profile})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"users": users})
}

package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"devconnects/config"
	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/delivery/http/response"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/errors"
	"devconnects/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// dobLayouts are the date formats accepted for dob, tried in order.
var dobLayouts = []string{"2006-01-02", time.RFC3339}

// AuthHandler serves registration and the cookie session.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	session *config.SessionConfig
	logger  *slog.Logger
}

type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		session: params.Config.Session,
		logger:  params.Logger,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	DOB      string `json:"dob"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dob, err := parseDOB(req.DOB)
	if err != nil {
		return err
	}

	user, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		DOB:      dob,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "User registered successfully", response.Payload{"user": user})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, output.ExpiresAt))

	return response.Success(c, http.StatusOK, "Login successful", response.Payload{"user": output.User})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Debug("Session cleared", slog.String("user_id", deliverycontext.GetUserID(c)))

	return response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) Profile(c echo.Context) error {
	output, err := h.authUC.Profile(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{
		"user":  output.User,
		"posts": output.Posts,
	})
}

// sessionCookie builds the session cookie. A zero-valued token with a past expiry clears it.
func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: parseSameSite(h.session.SameSite),
	}
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(time.Until(expiresAt).Seconds())
	}

	return cookie
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// parseDOB leaves an empty value zero so the usecase reports the missing field.
func parseDOB(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	for _, layout := range dobLayouts {
		if dob, err := time.Parse(layout, raw); err == nil {
			return dob, nil
		}
	}

	return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("dob must be a date (YYYY-MM-DD)")
}

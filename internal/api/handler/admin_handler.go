package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/aeropark/parking-system/internal/api/metrics"
	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// AdminHandler handles administrator authentication. The stored session
// record is the source of truth; the JWT only carries the identity between
// requests.
type AdminHandler struct {
	service   ports.AdminService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAdminHandler(service ports.AdminService, jwtSecret string, tokenTTL time.Duration) *AdminHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AdminHandler{service: service, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// Login authenticates an administrator and returns a bearer token.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  loginResponse
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	if !result.Success {
		metrics.AdminLoginsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, loginResponse{Success: false, Message: result.Message})
	}

	session, err := h.service.CurrentSession(c.Request().Context())
	if err != nil {
		return err
	}
	token, err := h.generateToken(session)
	if err != nil {
		return err
	}

	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, Message: result.Message, Token: token})
}

// Logout removes the session record, revoking any outstanding token.
//
// @Summary      Admin logout
// @Tags         admin
// @Produce      json
// @Success      200  {object}  transitionResponse
// @Router       /admin/logout [post]
func (h *AdminHandler) Logout(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transitionResponse{OK: true})
}

// Session returns the current session record.
//
// @Summary      Current admin session
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.AdminSession
// @Failure      401  {object}  errorResponse
// @Router       /admin/session [get]
func (h *AdminHandler) Session(c echo.Context) error {
	session, err := h.service.CurrentSession(c.Request().Context())
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrNotLoggedIn
	}
	return c.JSON(http.StatusOK, session)
}

// ChangePassword updates the logged-in administrator's password.
//
// @Summary      Change admin password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  domain.AuthResult
// @Failure      401   {object}  domain.AuthResult
// @Router       /admin/password [post]
func (h *AdminHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.ChangePassword(c.Request().Context(), req.OldPassword, req.NewPassword)
	if err != nil {
		return err
	}
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnauthorized
	}
	return c.JSON(status, result)
}

func (h *AdminHandler) generateToken(session *domain.AdminSession) (string, error) {
	claims := jwt.MapClaims{
		"username": session.Username,
		"name":     session.Name,
		"exp":      time.Now().Add(h.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}

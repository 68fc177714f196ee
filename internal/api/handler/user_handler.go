package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// UserHandler exposes the admin view over registered users.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Plate   *string `json:"plate"`
	Blocked *bool   `json:"blocked"`
}

type deleteUserResponse struct {
	OK    bool `json:"ok"`
	Found bool `json:"found"`
}

// List returns all users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user by id.
//
// @Summary      Get one user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, found, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrUserNotFound
	}
	return c.JSON(http.StatusOK, user)
}

// Update merges a partial field set into a user record.
//
// @Summary      Patch a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to merge"
// @Success      200   {object}  transitionResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	found, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.UserPatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Plate:   req.Plate,
		Blocked: req.Blocked,
	})
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrUserNotFound
	}
	return c.JSON(http.StatusOK, transitionResponse{OK: true})
}

// Delete removes a user. Deleting an absent id is still a success; the
// response exposes whether a record was actually removed.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  deleteUserResponse
// @Router       /admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	found, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteUserResponse{OK: true, Found: found})
}

// Block flags a user as blocked.
//
// @Summary      Block a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  transitionResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id}/block [post]
func (h *UserHandler) Block(c echo.Context) error {
	return h.setBlocked(c, true)
}

// Unblock clears the blocked flag.
//
// @Summary      Unblock a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  transitionResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id}/unblock [post]
func (h *UserHandler) Unblock(c echo.Context) error {
	return h.setBlocked(c, false)
}

func (h *UserHandler) setBlocked(c echo.Context, blocked bool) error {
	var (
		found bool
		err   error
	)
	if blocked {
		found, err = h.service.Block(c.Request().Context(), c.Param("id"))
	} else {
		found, err = h.service.Unblock(c.Request().Context(), c.Param("id"))
	}
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrUserNotFound
	}
	return c.JSON(http.StatusOK, transitionResponse{OK: true})
}

// Stats returns directory counters.
//
// @Summary      User statistics
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.UserStats
// @Router       /admin/users/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

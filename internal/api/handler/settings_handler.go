package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// SettingsHandler exposes the parking-wide configuration record.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type updateSettingsRequest struct {
	ParkingName *string  `json:"parkingName"`
	TotalSpots  *int     `json:"totalSpots" validate:"omitempty,gte=1"`
	RatePerHour *float64 `json:"ratePerHour" validate:"omitempty,gte=0"`
	Currency    *string  `json:"currency"`
	MaxDuration *int     `json:"maxDuration" validate:"omitempty,gte=1"`
	Address     *string  `json:"address"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email" validate:"omitempty,email"`
}

// Get returns the stored settings, or the defaults when nothing is stored.
//
// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Settings
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update merges a partial settings record and returns the result.
//
// @Summary      Update settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      updateSettingsRequest  true  "Fields to merge"
// @Success      200   {object}  domain.Settings
// @Router       /admin/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	settings, err := h.service.Update(c.Request().Context(), domain.SettingsPatch{
		ParkingName: req.ParkingName,
		TotalSpots:  req.TotalSpots,
		RatePerHour: req.RatePerHour,
		Currency:    req.Currency,
		MaxDuration: req.MaxDuration,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Reset overwrites the settings with the defaults and returns them.
//
// @Summary      Reset settings to defaults
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Settings
// @Router       /admin/settings/reset [post]
func (h *SettingsHandler) Reset(c echo.Context) error {
	settings, err := h.service.Reset(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gopkg.in/guregu/null.v4"

	"github.com/aeropark/parking-system/internal/api/metrics"
	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// ParkingHandler handles HTTP requests for the spot registry.
type ParkingHandler struct {
	service ports.ParkingService
}

func NewParkingHandler(service ports.ParkingService) *ParkingHandler {
	return &ParkingHandler{service: service}
}

type reservationRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type updateSpotRequest struct {
	Status     *string      `json:"status" validate:"omitempty,oneof=available occupied reserved"`
	ReservedBy *null.String `json:"reserved_by"`
	ReservedAt *null.Time   `json:"reserved_at"`
}

type transitionResponse struct {
	OK bool `json:"ok"`
}

// List returns all spots.
//
// @Summary      List parking spots
// @Tags         parking
// @Produce      json
// @Success      200  {array}  domain.Spot
// @Router       /parking/spots [get]
func (h *ParkingHandler) List(c echo.Context) error {
	spots, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if spots == nil {
		spots = []domain.Spot{}
	}
	return c.JSON(http.StatusOK, spots)
}

// Get returns a single spot by id.
//
// @Summary      Get one parking spot
// @Tags         parking
// @Produce      json
// @Param        id   path      string  true  "Spot id, e.g. A1"
// @Success      200  {object}  domain.Spot
// @Failure      404  {object}  errorResponse
// @Router       /parking/spots/{id} [get]
func (h *ParkingHandler) Get(c echo.Context) error {
	spot, found, err := h.service.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrSpotNotFound
	}
	return c.JSON(http.StatusOK, spot)
}

// Update merges a partial field set into a spot. Admin only; the handler does
// not enforce the reservation invariant, matching the registry contract.
//
// @Summary      Patch a parking spot
// @Tags         parking
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Spot id"
// @Param        body  body      updateSpotRequest  true  "Fields to merge"
// @Success      200   {object}  domain.Spot
// @Failure      404   {object}  errorResponse
// @Router       /admin/parking/spots/{id} [patch]
func (h *ParkingHandler) Update(c echo.Context) error {
	var req updateSpotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := domain.SpotPatch{
		ReservedBy: req.ReservedBy,
		ReservedAt: req.ReservedAt,
	}
	if req.Status != nil {
		status := domain.SpotStatus(*req.Status)
		patch.Status = &status
	}

	spot, found, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrSpotNotFound
	}
	return c.JSON(http.StatusOK, spot)
}

// Stats returns the registry summary and refreshes the spot gauges.
//
// @Summary      Parking occupancy statistics
// @Tags         parking
// @Produce      json
// @Success      200  {object}  domain.SpotStats
// @Router       /parking/stats [get]
func (h *ParkingHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.ObserveSpotStats(stats)
	return c.JSON(http.StatusOK, stats)
}

// Reserve claims an available spot for a user.
//
// @Summary      Reserve a spot
// @Tags         parking
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Spot id"
// @Param        body  body      reservationRequest  true  "Reserving user"
// @Success      200   {object}  transitionResponse
// @Failure      409   {object}  errorResponse
// @Router       /parking/spots/{id}/reserve [post]
func (h *ParkingHandler) Reserve(c echo.Context) error {
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := h.service.Reserve(c.Request().Context(), c.Param("id"), req.UserID)
	if err != nil {
		return err
	}
	if !ok {
		metrics.ReservationsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusConflict, "spot is not available")
	}
	metrics.ReservationsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, transitionResponse{OK: true})
}

// Cancel releases a spot reserved by the same user.
//
// @Summary      Cancel own reservation
// @Tags         parking
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Spot id"
// @Param        body  body      reservationRequest  true  "Owning user"
// @Success      200   {object}  transitionResponse
// @Failure      409   {object}  errorResponse
// @Router       /parking/spots/{id}/cancel [post]
func (h *ParkingHandler) Cancel(c echo.Context) error {
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := h.service.CancelReservation(c.Request().Context(), c.Param("id"), req.UserID)
	if err != nil {
		return err
	}
	if !ok {
		metrics.CancellationsTotal.WithLabelValues("user", "rejected").Inc()
		return echo.NewHTTPError(http.StatusConflict, "spot is not reserved by this user")
	}
	metrics.CancellationsTotal.WithLabelValues("user", "done").Inc()
	return c.JSON(http.StatusOK, transitionResponse{OK: true})
}

// Drift runs one simulation pass on demand. Admin only.
//
// @Summary      Run one occupancy drift pass
// @Tags         parking
// @Produce      json
// @Success      200  {object}  ports.DriftReport
// @Router       /admin/parking/drift [post]
func (h *ParkingHandler) Drift(c echo.Context) error {
	report, err := h.service.SimulateDrift(c.Request().Context())
	if err != nil {
		return err
	}
	if report.OccupiedSpotID != "" {
		metrics.DriftTransitionsTotal.WithLabelValues("occupy").Inc()
	}
	if report.FreedSpotID != "" {
		metrics.DriftTransitionsTotal.WithLabelValues("free").Inc()
	}
	return c.JSON(http.StatusOK, report)
}

// Reset regenerates the grid and clears the reservation history. Admin only.
//
// @Summary      Reset the parking grid
// @Tags         parking
// @Produce      json
// @Success      200  {object}  transitionResponse
// @Router       /admin/parking/reset [post]
func (h *ParkingHandler) Reset(c echo.Context) error {
	if err := h.service.Reset(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transitionResponse{OK: true})
}

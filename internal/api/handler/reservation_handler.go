package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aeropark/parking-system/internal/api/metrics"
	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
	"github.com/aeropark/parking-system/pkg/csvexport"
)

// ReservationHandler exposes the reservation history.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// List returns the full history, or only active entries with ?active=true.
//
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Param        active  query     bool  false  "Only active entries"
// @Success      200     {array}   domain.Reservation
// @Router       /admin/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		entries []domain.Reservation
		err     error
	)
	if c.QueryParam("active") == "true" {
		entries, err = h.service.ListActive(ctx)
	} else {
		entries, err = h.service.ListAll(ctx)
	}
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.Reservation{}
	}
	return c.JSON(http.StatusOK, entries)
}

// ListForUser returns a user's active reservations.
//
// @Summary      List a user's active reservations
// @Tags         reservations
// @Produce      json
// @Param        userId  path     string  true  "User id"
// @Success      200     {array}  domain.Reservation
// @Router       /reservations/user/{userId} [get]
func (h *ReservationHandler) ListForUser(c echo.Context) error {
	entries, err := h.service.ListActiveForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.Reservation{}
	}
	return c.JSON(http.StatusOK, entries)
}

// Cancel is the administrative override: it cancels by log id and frees the
// corresponding spot.
//
// @Summary      Cancel a reservation by log id
// @Tags         reservations
// @Produce      json
// @Param        id   path      string  true  "Reservation log id"
// @Success      200  {object}  transitionResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c echo.Context) error {
	ok, err := h.service.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !ok {
		metrics.CancellationsTotal.WithLabelValues("admin", "rejected").Inc()
		return domain.ErrReservationNotFound
	}
	metrics.CancellationsTotal.WithLabelValues("admin", "done").Inc()
	return c.JSON(http.StatusOK, transitionResponse{OK: true})
}

// Stats returns log counters by status.
//
// @Summary      Reservation statistics
// @Tags         reservations
// @Produce      json
// @Success      200  {object}  domain.ReservationStats
// @Router       /admin/reservations/stats [get]
func (h *ReservationHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Export streams the full history as CSV.
//
// @Summary      Export reservations as CSV
// @Tags         reservations
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /admin/reservations/export [get]
func (h *ReservationHandler) Export(c echo.Context) error {
	entries, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	text, err := csvexport.ToCSV(entries)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="reservations.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(text))
}

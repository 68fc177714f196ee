package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
	"github.com/aeropark/parking-system/pkg/csvexport"
	"github.com/aeropark/parking-system/pkg/format"
)

// PaymentHandler exposes read-only payment reporting.
type PaymentHandler struct {
	payments ports.PaymentService
	settings ports.SettingsService
}

func NewPaymentHandler(payments ports.PaymentService, settings ports.SettingsService) *PaymentHandler {
	return &PaymentHandler{payments: payments, settings: settings}
}

type revenueResponse struct {
	Total          float64            `json:"total"`
	TotalFormatted string             `json:"total_formatted"`
	ByMethod       map[string]float64 `json:"by_method"`
}

// List returns payments, optionally filtered by method or paidAt range.
// from/to accept RFC 3339 timestamps or plain dates; bounds are inclusive.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Param        method  query     string  false  "Payment method"
// @Param        from    query     string  false  "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param        to      query     string  false  "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success      200     {array}   domain.Payment
// @Failure      400     {object}  errorResponse
// @Router       /admin/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if method := c.QueryParam("method"); method != "" {
		payments, err := h.payments.FilterByMethod(ctx, method)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, nonNil(payments))
	}

	fromRaw, toRaw := c.QueryParam("from"), c.QueryParam("to")
	if fromRaw != "" || toRaw != "" {
		from, err := parseTimeParam(fromRaw, time.Time{})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid from parameter")
		}
		// An open upper bound stretches far enough into the future to be one.
		to, err := parseTimeParam(toRaw, time.Now().UTC().AddDate(100, 0, 0))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid to parameter")
		}
		payments, err := h.payments.FilterByDateRange(ctx, from, to)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, nonNil(payments))
	}

	payments, err := h.payments.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(payments))
}

// Revenue returns the aggregate revenue report.
//
// @Summary      Revenue report
// @Tags         payments
// @Produce      json
// @Success      200  {object}  revenueResponse
// @Router       /admin/payments/revenue [get]
func (h *PaymentHandler) Revenue(c echo.Context) error {
	ctx := c.Request().Context()
	total, err := h.payments.TotalRevenue(ctx)
	if err != nil {
		return err
	}
	byMethod, err := h.payments.RevenueByMethod(ctx)
	if err != nil {
		return err
	}
	settings, err := h.settings.Get(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, revenueResponse{
		Total:          total,
		TotalFormatted: format.Money(total, settings.Currency),
		ByMethod:       byMethod,
	})
}

// Stats returns ledger counters.
//
// @Summary      Payment statistics
// @Tags         payments
// @Produce      json
// @Success      200  {object}  domain.PaymentStats
// @Router       /admin/payments/stats [get]
func (h *PaymentHandler) Stats(c echo.Context) error {
	stats, err := h.payments.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Export streams all payments as CSV.
//
// @Summary      Export payments as CSV
// @Tags         payments
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /admin/payments/export [get]
func (h *PaymentHandler) Export(c echo.Context) error {
	payments, err := h.payments.List(c.Request().Context())
	if err != nil {
		return err
	}
	text, err := csvexport.ToCSV(payments)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="payments.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(text))
}

func nonNil(payments []domain.Payment) []domain.Payment {
	if payments == nil {
		return []domain.Payment{}
	}
	return payments
}

// parseTimeParam accepts RFC 3339 timestamps or bare dates. Empty input
// yields the fallback.
func parseTimeParam(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

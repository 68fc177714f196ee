package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/aeropark/parking-system/internal/api/handler"
	"github.com/aeropark/parking-system/internal/api/middleware"
	"github.com/aeropark/parking-system/internal/core/ports"
	healthhandlers "github.com/aeropark/parking-system/internal/infrastructure/http/handlers"
)

// Deps bundles everything the router needs. Redis is nil when the memory
// backend is active; the readiness probe adapts.
type Deps struct {
	JWTSecret string
	TokenTTL  time.Duration
	Redis     *redis.Client
	Logger    zerolog.Logger

	Parking      ports.ParkingService
	Reservations ports.ReservationService
	Users        ports.UserService
	Payments     ports.PaymentService
	Admin        ports.AdminService
	Settings     ports.SettingsService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Handlers ---
	parkingHandler := handler.NewParkingHandler(deps.Parking)
	reservationHandler := handler.NewReservationHandler(deps.Reservations)
	userHandler := handler.NewUserHandler(deps.Users)
	paymentHandler := handler.NewPaymentHandler(deps.Payments, deps.Settings)
	adminHandler := handler.NewAdminHandler(deps.Admin, deps.JWTSecret, deps.TokenTTL)
	settingsHandler := handler.NewSettingsHandler(deps.Settings)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	readinessHandler := healthhandlers.NewReadinessHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Public routes (driver-facing) ---
	e.GET("/parking/spots", parkingHandler.List)
	e.GET("/parking/spots/:id", parkingHandler.Get)
	e.GET("/parking/stats", parkingHandler.Stats)
	e.POST("/parking/spots/:id/reserve", parkingHandler.Reserve)
	e.POST("/parking/spots/:id/cancel", parkingHandler.Cancel)
	e.GET("/reservations/user/:userId", reservationHandler.ListForUser)
	e.GET("/settings", settingsHandler.Get)

	e.POST("/admin/login", adminHandler.Login)

	// --- Admin routes (token + live session record required) ---
	admin := e.Group("/admin",
		middleware.Auth(deps.JWTSecret),
		middleware.RequireSession(deps.Admin),
	)
	admin.POST("/logout", adminHandler.Logout)
	admin.GET("/session", adminHandler.Session)
	admin.POST("/password", adminHandler.ChangePassword)

	admin.PATCH("/parking/spots/:id", parkingHandler.Update)
	admin.POST("/parking/drift", parkingHandler.Drift)
	admin.POST("/parking/reset", parkingHandler.Reset)

	admin.GET("/reservations", reservationHandler.List)
	admin.GET("/reservations/stats", reservationHandler.Stats)
	admin.GET("/reservations/export", reservationHandler.Export)
	admin.POST("/reservations/:id/cancel", reservationHandler.Cancel)

	admin.GET("/users", userHandler.List)
	admin.GET("/users/stats", userHandler.Stats)
	admin.GET("/users/:id", userHandler.Get)
	admin.PATCH("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.POST("/users/:id/block", userHandler.Block)
	admin.POST("/users/:id/unblock", userHandler.Unblock)

	admin.GET("/payments", paymentHandler.List)
	admin.GET("/payments/stats", paymentHandler.Stats)
	admin.GET("/payments/revenue", paymentHandler.Revenue)
	admin.GET("/payments/export", paymentHandler.Export)

	admin.PUT("/settings", settingsHandler.Update)
	admin.POST("/settings/reset", settingsHandler.Reset)

	return e
}

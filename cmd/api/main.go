package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aeropark/parking-system/internal/api"
	"github.com/aeropark/parking-system/internal/core/ports"
	"github.com/aeropark/parking-system/internal/core/service"
	"github.com/aeropark/parking-system/internal/infrastructure/config"
	"github.com/aeropark/parking-system/internal/infrastructure/db/memory"
	storeredis "github.com/aeropark/parking-system/internal/infrastructure/db/redis"
	"github.com/aeropark/parking-system/internal/infrastructure/simulator"
	"github.com/aeropark/parking-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Storage backend ---
	var store ports.KeyValueStore
	var redisClient *redis.Client
	switch cfg.StorageBackend {
	case "memory":
		store = memory.NewStore()
		log.Info().Msg("using in-memory storage backend")
	default:
		client, err := storeredis.Connect(ctx, storeredis.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		redisClient = client
		store = storeredis.NewKVStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	// --- Credential scheme ---
	var verifier ports.CredentialVerifier = service.PlaintextVerifier{}
	if cfg.CredentialScheme == "bcrypt" {
		verifier = service.BcryptVerifier{}
	}

	// --- Core services ---
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	parkingService := service.NewParkingService(store, rng, log)
	reservationService := service.NewReservationService(store, log)
	userService := service.NewUserService(store, log)
	paymentService := service.NewPaymentService(store, log)
	adminService := service.NewAdminService(store, verifier, log)
	settingsService := service.NewSettingsService(store, log)

	if err := parkingService.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize parking grid")
	}
	if err := adminService.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	// --- Background simulation ---
	sim := simulator.New(
		parkingService,
		reservationService,
		settingsService,
		cfg.DriftInterval,
		cfg.ExpirySweepInterval,
		log,
	)
	sim.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     24 * time.Hour,
		Redis:        redisClient,
		Logger:       log,
		Parking:      parkingService,
		Reservations: reservationService,
		Users:        userService,
		Payments:     paymentService,
		Admin:        adminService,
		Settings:     settingsService,
	})

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

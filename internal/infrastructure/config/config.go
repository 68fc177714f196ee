package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StorageBackend selects the key-value store: "redis" or "memory".
	// The memory backend loses everything on restart, like a fresh browser
	// profile, and is meant for demos and tests.
	StorageBackend string `env:"STORAGE_BACKEND, default=redis"`

	// CredentialScheme selects how admin passwords are stored: "plaintext"
	// (historical behaviour) or "bcrypt".
	CredentialScheme string `env:"CREDENTIAL_SCHEME, default=plaintext"`

	// DriftInterval is how often the occupancy simulation ticks. Zero
	// disables the simulator.
	DriftInterval time.Duration `env:"DRIFT_INTERVAL, default=15s"`

	// ExpirySweepInterval is how often overdue reservations are completed.
	// Zero disables the sweep.
	ExpirySweepInterval time.Duration `env:"EXPIRY_SWEEP_INTERVAL, default=1m"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-driven settings for the server.
type Config struct {
	Port               string        `envconfig:"PORT" default:"8080"`
	DBPath             string        `envconfig:"DB_PATH" default:"eventpulse.db"`
	JWTSecret          string        `envconfig:"JWT_SECRET" default:"dev-secret"`
	TokenExpiry        time.Duration `envconfig:"TOKEN_EXPIRY" default:"24h"`
	SimulatedLatency   time.Duration `envconfig:"SIMULATED_LATENCY" default:"1s"`
	PushSupported      bool          `envconfig:"PUSH_SUPPORTED" default:"true"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	NearbyScanSchedule string        `envconfig:"NEARBY_SCAN_SCHEDULE" default:"@hourly"`
	AllowedOrigin      string        `envconfig:"ALLOWED_ORIGIN" default:"http://localhost:3000"`
}

// LoadConfig reads the optional .env file and populates the config from
// the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

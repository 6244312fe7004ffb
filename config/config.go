package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DBUrl       string `env:"DATABASE_URL"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// Auth
	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// Notification queue (optional - no-op publisher when unset)
	AMQPURL   string `env:"AMQP_URL"`
	AMQPQueue string `env:"AMQP_QUEUE" envDefault:"notifications"`

	// Redis (optional - rate limiting falls back to in-memory)
	RedisURL string `env:"REDIS_URL"`

	// Rate limiting
	RateLimitWindowSeconds int `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
	RateLimitThreshold     int `env:"RATE_LIMIT_THRESHOLD" envDefault:"100"`
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; ignored in production when absent.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config from environment: %w", err)
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Issued tokens will not survive restarts.")
	}
	if cfg.AMQPURL == "" {
		log.Println("WARNING: AMQP_URL not configured. Notifications will be dropped.")
	}

	return cfg, nil
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=168h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Postgres  PostgresConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST,     default=localhost"`
	Port     int    `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB,       default=marketplace"`
	SSLMode  string `env:"POSTGRES_SSLMODE,  default=disable"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig bounds write traffic per caller per fixed window.
type RateLimitConfig struct {
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=1m"`
	Limit  int64         `env:"RATE_LIMIT_MAX,    default=60"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

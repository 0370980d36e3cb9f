// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read by Load when ENV_FILE is unset.
const DefaultEnvFile = ".env"

// Seed store kinds.
const (
	SeedsStoreFile     = "file"
	SeedsStorePostgres = "postgres"
	SeedsStoreRedis    = "redis"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	GatewayHTTPClient HTTPClientConfig  `envPrefix:"GATEWAY_HTTP_CLIENT_"`
	GatewayGRPCClient GRPCClientConfig  `envPrefix:"GATEWAY_GRPC_CLIENT_"`
	LocustUser        LocustUserConfig  `envPrefix:"LOCUST_USER_"`
	Load              LoadConfig        `envPrefix:"LOAD_"`
	Seeds             SeedsConfig       `envPrefix:"SEEDS_"`
	FakeGateway       FakeGatewayConfig `envPrefix:"FAKE_GATEWAY_"`
}

// HTTPClientConfig configures the gateway HTTP client.
type HTTPClientConfig struct {
	URL     string        `env:"URL" envDefault:"http://localhost:8003"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"100s"`
}

// ClientURL returns the base URL requests are resolved against.
func (c HTTPClientConfig) ClientURL() string {
	return c.URL
}

// GRPCClientConfig configures the gateway gRPC client.
type GRPCClientConfig struct {
	Host    string        `env:"HOST" envDefault:"localhost"`
	Port    int           `env:"PORT" envDefault:"9003"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"100s"`
}

// ClientURL returns the dial target in host:port form.
func (c GRPCClientConfig) ClientURL() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LocustUserConfig configures the pause between tasks of a virtual user.
type LocustUserConfig struct {
	WaitTimeMin time.Duration `env:"WAIT_TIME_MIN" envDefault:"1s"`
	WaitTimeMax time.Duration `env:"WAIT_TIME_MAX" envDefault:"3s"`
}

// LoadConfig configures a load run.
type LoadConfig struct {
	Users         int           `env:"USERS" envDefault:"10"`
	SpawnRate     float64       `env:"SPAWN_RATE" envDefault:"1"`
	RunTime       time.Duration `env:"RUN_TIME" envDefault:"1m"`
	StatsInterval time.Duration `env:"STATS_INTERVAL" envDefault:"5s"`
	CSVPrefix     string        `env:"CSV_PREFIX"`
	Percentiles   []float64     `env:"PERCENTILES" envDefault:"0.50,0.60,0.70,0.80,0.90,0.95,0.99,1.0"`
	MetricsAddr   string        `env:"METRICS_ADDR"`
}

// SeedsConfig configures where seed results are kept.
type SeedsConfig struct {
	DumpsDir    string `env:"DUMPS_DIR" envDefault:"dumps"`
	Store       string `env:"STORE" envDefault:"file"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`
}

// FakeGatewayConfig configures the in-memory gateway used for local runs.
type FakeGatewayConfig struct {
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8003"`
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"9003"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Latency         time.Duration `env:"LATENCY" envDefault:"0s"`
	LatencyJitter   time.Duration `env:"LATENCY_JITTER" envDefault:"0s"`
	BaseURL         string        `env:"BASE_URL" envDefault:"http://localhost:8003"`
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	u, err := url.Parse(c.GatewayHTTPClient.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("GATEWAY_HTTP_CLIENT_URL must be an absolute URL, got %q", c.GatewayHTTPClient.URL)
	}
	if c.GatewayGRPCClient.Port <= 0 || c.GatewayGRPCClient.Port > 65535 {
		return fmt.Errorf("GATEWAY_GRPC_CLIENT_PORT out of range: %d", c.GatewayGRPCClient.Port)
	}
	if c.LocustUser.WaitTimeMin < 0 || c.LocustUser.WaitTimeMax < c.LocustUser.WaitTimeMin {
		return errors.New("LOCUST_USER_WAIT_TIME_MIN must be >= 0 and <= LOCUST_USER_WAIT_TIME_MAX")
	}
	if c.Load.Users <= 0 {
		return errors.New("LOAD_USERS must be positive")
	}
	if c.Load.SpawnRate <= 0 {
		return errors.New("LOAD_SPAWN_RATE must be positive")
	}
	for _, p := range c.Load.Percentiles {
		if p <= 0 || p > 1 {
			return fmt.Errorf("LOAD_PERCENTILES entries must be in (0, 1], got %v", p)
		}
	}

	switch c.Seeds.Store {
	case SeedsStoreFile:
	case SeedsStorePostgres:
		if c.Seeds.DatabaseURL == "" {
			return errors.New("SEEDS_DATABASE_URL is required for the postgres seeds store")
		}
	case SeedsStoreRedis:
		if c.Seeds.RedisURL == "" {
			return errors.New("SEEDS_REDIS_URL is required for the redis seeds store")
		}
	default:
		return fmt.Errorf("unknown SEEDS_STORE %q", c.Seeds.Store)
	}

	return nil
}

// Load parses environment variables and returns a validated Config.
// Values from ENV_FILE (default .env) fill in variables the process does not set.
func Load() (*Config, error) {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = DefaultEnvFile
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

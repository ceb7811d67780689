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

	// SessionDelay is the simulated network delay applied to login and signup.
	SessionDelay time.Duration `env:"SESSION_DELAY, default=800ms"`

	Storage StorageConfig
	Redis   RedisConfig
	Mongo   MongoConfig
	Geo     GeoConfig
}

type StorageConfig struct {
	// Driver selects the slot-store backend: memory, redis, or mongo.
	Driver string `env:"STORAGE_DRIVER, default=memory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=toyshare"`
}

type GeoConfig struct {
	// Mode configures the static locator: fixed, denied, unavailable,
	// timeout, or off (no capability at all).
	Mode string  `env:"GEO_MODE, default=fixed"`
	Lat  float64 `env:"GEO_LAT,  default=40.7128"`
	Lng  float64 `env:"GEO_LNG,  default=-74.0060"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

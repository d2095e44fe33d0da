package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	Mongo MongoConfig
	Redis RedisConfig
	Media MediaConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=reels_pro"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MediaConfig points at the object storage the clients upload to. Endpoint is
// optional and exists for S3-compatible stores (MinIO and friends).
type MediaConfig struct {
	Endpoint  string `env:"MEDIA_S3_ENDPOINT"`
	Region    string `env:"MEDIA_S3_REGION, default=us-east-1"`
	Bucket    string `env:"MEDIA_S3_BUCKET, default=reels-media"`
	AccessKey string `env:"MEDIA_S3_ACCESS_KEY"`
	SecretKey string `env:"MEDIA_S3_SECRET_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

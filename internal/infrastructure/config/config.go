package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string `env:"PORT,              default=8080"`
	Env          string `env:"ENV,               default=development"`
	LogLevel     string `env:"LOG_LEVEL,         default=info"`
	CipherSecret string `env:"CIPHER_SECRET_KEY"`
	DataDir      string `env:"DATA_DIR,          default=data/json"`
	LogsDir      string `env:"LOGS_DIR,          default=data/logs"`

	Redis RedisConfig
	MySQL MySQLConfig
}

// RedisConfig is optional: an empty Addr disables server-side session
// revocation and the service stays fully stateless.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// MySQLConfig is consumed only by the export snapshot tool.
type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsProduction toggles production-only behaviour such as the session
// cookie's Secure attribute.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

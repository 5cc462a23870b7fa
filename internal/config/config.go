package config

import "github.com/caarlos0/env/v10"

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name        string `env:"APP_NAME" envDefault:"jobboard-ai"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"5000"`
}

type DatabaseConfig struct {
	Host         string `env:"DB_HOST,required"`
	Port         string `env:"DB_PORT" envDefault:"5432"`
	Name         string `env:"DB_NAME" envDefault:"job_board_db"`
	User         string `env:"DB_USER" envDefault:"postgres"`
	Password     string `env:"DB_PASSWORD"`
	SSLMode      string `env:"DB_SSL_MODE" envDefault:"disable"`
	PoolMaxConns int    `env:"DB_POOL_MAX_CONNS" envDefault:"8"`
	PoolMinConns int    `env:"DB_POOL_MIN_CONNS" envDefault:"0"`
}

// RedisConfig configures the notification publisher. An empty Addr disables
// publishing entirely.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Channel  string `env:"REDIS_EVENTS_CHANNEL" envDefault:"jobboard:ai:events"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

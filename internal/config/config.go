package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server Server
	Store  Store
	Redis  Redis
	Site   Site
	Admin  Admin

	// MinOrderValue is the checkout threshold in EGP, applied to the
	// product subtotal before shipping.
	MinOrderValue int64 `env:"MIN_ORDER_VALUE" envDefault:"100"`
}

type Server struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Store struct {
	DataDir string `env:"STORE_DATA_DIR" envDefault:"./data"`
}

type Redis struct {
	// Addr empty disables the product cache.
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Site struct {
	Name        string `env:"SITE_NAME" envDefault:"AAAMO"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"متجر AAAMO لإكسسوارات الموبايل عالية الجودة"`
}

type Admin struct {
	Email    string `env:"ADMIN_EMAIL" envDefault:"searchemail85@gmail.com"`
	Password string `env:"ADMIN_PASSWORD" envDefault:"searchemail85@gmail.com"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) MinOrder() decimal.Decimal {
	return decimal.NewFromInt(c.MinOrderValue)
}

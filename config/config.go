// Package config loads service configuration from the environment. A local
// .env file is picked up automatically in development.
package config

import (
	"fmt"
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port int

	Redis   RedisConfig
	Hub     HubConfig
	Auth    AuthConfig
	Billing BillingConfig

	// FreeCustomizationLimit is the free-tier customization allowance.
	FreeCustomizationLimit int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type HubConfig struct {
	URL   string
	Model string
}

type AuthConfig struct {
	Issuer   string
	Audience string
	// Disabled turns auth enforcement off for local development.
	Disabled bool
}

type BillingConfig struct {
	StripeSecretKey   string
	PriceIDProMonthly string
	FrontendURL       string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port: 8300,
		Redis: RedisConfig{
			Addr: "127.0.0.1:6379",
		},
		FreeCustomizationLimit: 3,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.Redis.DB = db
	}

	cfg.Hub.URL = os.Getenv("MODEL_HUB_URL")
	cfg.Hub.Model = os.Getenv("MODEL_HUB_MODEL")

	cfg.Auth.Issuer = os.Getenv("AUTH_ISSUER")
	cfg.Auth.Audience = os.Getenv("AUTH_AUDIENCE")
	if v := os.Getenv("AUTH_DISABLED"); v != "" {
		disabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_DISABLED %q: %w", v, err)
		}
		cfg.Auth.Disabled = disabled
	}
	if !cfg.Auth.Disabled && (cfg.Auth.Issuer == "" || cfg.Auth.Audience == "") {
		return nil, fmt.Errorf("AUTH_ISSUER and AUTH_AUDIENCE must be set unless AUTH_DISABLED=true")
	}

	cfg.Billing.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Billing.PriceIDProMonthly = os.Getenv("STRIPE_PRICE_ID_PRO_MONTHLY")
	cfg.Billing.FrontendURL = os.Getenv("FRONTEND_URL")

	if v := os.Getenv("FREE_CUSTOMIZATION_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid FREE_CUSTOMIZATION_LIMIT %q", v)
		}
		cfg.FreeCustomizationLimit = limit
	}

	return cfg, nil
}

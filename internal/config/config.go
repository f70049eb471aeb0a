package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	DB       DBConfig
	Checkout CheckoutConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host               string
	Port               int
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
}

type DBConfig struct {
	// Path is the sqlite database file; created on first open.
	Path string
}

type CheckoutConfig struct {
	// Enabled gates the hosted payment session. Off by default: orders are
	// taken without online payment and settled on pickup or delivery.
	Enabled    bool
	Secret     string
	SuccessURL string
	CancelURL  string
	Currency   string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "pedidos-api"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host:               getEnv("HTTP_HOST", "0.0.0.0"),
			Port:               getEnvAsInt("HTTP_PORT", 8000),
			RequestTimeout:     30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			MaxRequestBodySize: 1 << 20, // 1MB
		},
		DB: DBConfig{
			Path: getEnv("DB_PATH", "./data.db"),
		},
		Checkout: CheckoutConfig{
			Enabled:    getEnvAsBool("CHECKOUT_ENABLED", false),
			Secret:     getEnv("STRIPE_SECRET", ""),
			SuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://127.0.0.1:8000/sucesso"),
			CancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://127.0.0.1:8000/cancelado"),
			Currency:   getEnv("CHECKOUT_CURRENCY", "eur"),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.DB.Path == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	if c.Checkout.Enabled && c.Checkout.Secret == "" {
		return fmt.Errorf("STRIPE_SECRET is required when CHECKOUT_ENABLED is set")
	}
	return nil
}

/* ================= helpers ================= */

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Turnstile (CAPTCHA) Config
	TurnstileSecret string `env:"TURNSTILE_SECRET"`
	TurnstileURL    string `env:"TURNSTILE_URL"`

	// SMS Gateway Config
	SMSGatewayURL    string        `env:"SMS_GATEWAY_URL"`
	SMSGatewaySecret string        `env:"SMS_GATEWAY_SECRET"`
	SMSTimeout       time.Duration `env:"SMS_TIMEOUT" envDefault:"5s"`
	SMSMaxRetries    int           `env:"SMS_MAX_RETRIES" envDefault:"3"`
	SMSBaseDelay     time.Duration `env:"SMS_BASE_DELAY" envDefault:"1s"`

	// Verification Code Config
	CodeTTL time.Duration `env:"CODE_TTL" envDefault:"10m"`

	// Rate Limit Budgets
	SubmitLimit  int           `env:"SUBMIT_LIMIT" envDefault:"5"`
	SubmitWindow time.Duration `env:"SUBMIT_WINDOW" envDefault:"1h"`
	VerifyLimit  int           `env:"VERIFY_LIMIT" envDefault:"10"`
	VerifyWindow time.Duration `env:"VERIFY_WINDOW" envDefault:"5m"`
	ResendLimit  int           `env:"RESEND_LIMIT" envDefault:"3"`
	ResendWindow time.Duration `env:"RESEND_WINDOW" envDefault:"10m"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for admin authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		TurnstileSecret:        os.Getenv("TURNSTILE_SECRET"),
		TurnstileURL:           os.Getenv("TURNSTILE_URL"),
		SMSGatewayURL:          os.Getenv("SMS_GATEWAY_URL"),
		SMSGatewaySecret:       os.Getenv("SMS_GATEWAY_SECRET"),
		SMSTimeout:             getEnvAsDuration("SMS_TIMEOUT", 5*time.Second),
		SMSMaxRetries:          getEnvAsInt("SMS_MAX_RETRIES", 3),
		SMSBaseDelay:           getEnvAsDuration("SMS_BASE_DELAY", time.Second),
		CodeTTL:                getEnvAsDuration("CODE_TTL", 10*time.Minute),
		SubmitLimit:            getEnvAsInt("SUBMIT_LIMIT", 5),
		SubmitWindow:           getEnvAsDuration("SUBMIT_WINDOW", time.Hour),
		VerifyLimit:            getEnvAsInt("VERIFY_LIMIT", 10),
		VerifyWindow:           getEnvAsDuration("VERIFY_WINDOW", 5*time.Minute),
		ResendLimit:            getEnvAsInt("RESEND_LIMIT", 3),
		ResendWindow:           getEnvAsDuration("RESEND_WINDOW", 10*time.Minute),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.TurnstileSecret == "" {
		return nil, fmt.Errorf("TURNSTILE_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultStripeAPIVersion версия Stripe API, зафиксированная на старте процесса,
// чтобы поведение не менялось при обновлениях на стороне провайдера.
const DefaultStripeAPIVersion = "2023-10-16"

// Config представляет структуру конфигурации для приложения.
type Config struct {
	Server struct {
		Port            string `mapstructure:"SERVER_PORT" validate:"required"`
		Env             string `mapstructure:"APP_ENV"`
		ReadTimeout     int    `mapstructure:"SERVER_READ_TIMEOUT" validate:"gt=0"`
		WriteTimeout    int    `mapstructure:"SERVER_WRITE_TIMEOUT" validate:"gt=0"`
		ShutdownTimeout int    `mapstructure:"SERVER_SHUTDOWN_TIMEOUT" validate:"gt=0"`
	} `mapstructure:",squash"`
	Stripe struct {
		// APIKey может быть пустым: это не ошибка старта, а ошибка конфигурации,
		// которую сервис возвращает на каждый запрос (см. service.BillingService).
		APIKey     string `mapstructure:"STRIPE_SECRET_KEY"`
		APIVersion string `mapstructure:"STRIPE_API_VERSION" validate:"required"`
		Timeout    int    `mapstructure:"STRIPE_TIMEOUT" validate:"gt=0"`
	} `mapstructure:",squash"`
	Auth struct {
		JWTSecret string `mapstructure:"JWT_SECRET" validate:"required"`
	} `mapstructure:",squash"`
}

// Load загружает конфигурацию из переменных окружения (и .env вне production).
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		// .env не обязателен, игнорируем отсутствие файла
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("STRIPE_API_VERSION", DefaultStripeAPIVersion)
	v.SetDefault("STRIPE_TIMEOUT", 30)
	v.SetDefault("JWT_SECRET", "")

	v.AutomaticEnv() // Чтение переменных окружения

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

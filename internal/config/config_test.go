package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production") // не читать .env
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultStripeAPIVersion, cfg.Stripe.APIVersion)
	assert.Equal(t, 30, cfg.Stripe.Timeout)
	// Отсутствие ключа Stripe не ошибка загрузки конфигурации
	assert.Empty(t, cfg.Stripe.APIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_VERSION", "2024-04-10")
	t.Setenv("STRIPE_TIMEOUT", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sk_test_123", cfg.Stripe.APIKey)
	assert.Equal(t, "2024-04-10", cfg.Stripe.APIVersion)
	assert.Equal(t, 5, cfg.Stripe.Timeout)
}

func TestLoadMissingJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

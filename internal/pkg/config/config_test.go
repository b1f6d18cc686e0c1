package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": secret,
	}))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, 24*time.Hour, cfg.TokenTTL())
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, 5, cfg.Auth.MaxFailures)
	require.Equal(t, 15*time.Minute, cfg.Auth.Lockout)
	require.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "company_driver_portal", cfg.Mongo.Database)
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":           secret,
		"JWT_EXPIRATION_MS":    "60000",
		"ENV":                  "production",
		"LOGIN_LOCKOUT":        "1h",
		"CORS_ALLOWED_ORIGINS": "https://portal.example.com",
	}))
	require.NoError(t, err)

	require.False(t, cfg.IsDevelopment())
	require.Equal(t, time.Minute, cfg.TokenTTL())
	require.Equal(t, time.Hour, cfg.Auth.Lockout)
	require.Equal(t, []string{"https://portal.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadWith_SecretRequired(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.Error(t, err)
}

func TestLoadWith_ShortSecret(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "too-short",
	}))
	require.ErrorContains(t, err, "at least 32 bytes")
}

func TestLoadWith_NonPositiveExpiration(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":        secret,
		"JWT_EXPIRATION_MS": "0",
	}))
	require.Error(t, err)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "postgres://localhost:5432/helium?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidDatabaseURL(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	t.Setenv("DATABASE_URL", "://missing-scheme")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_OriginsList(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://db:5432/helium")
	t.Setenv("ALLOWED_ORIGINS", "https://editor.example.com, https://admin.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://editor.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

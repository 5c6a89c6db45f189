package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "caferri", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "caferri.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CAFERRI_DATABASE_DRIVER", "postgres")
	t.Setenv("CAFERRI_DATABASE_HOST", "db.internal")
	t.Setenv("CAFERRI_APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("CAFERRI_DATABASE_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.driver")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("CAFERRI_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestPostgresDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "caferri",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=caferri sslmode=disable",
		db.PostgresDSN())
}

package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, uint16(8080), cfg.HTTP.Port)
	require.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	require.Equal(t, "text", cfg.Log.SlogFormat())
	require.True(t, cfg.Enforcer.Enabled)
	require.Equal(t, time.Minute, cfg.Enforcer.DaypartingInterval)
	require.Equal(t, 5*time.Minute, cfg.Enforcer.BudgetInterval)
	require.False(t, cfg.Psql.RunMigrations)
	require.False(t, cfg.Psql.Seed)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PSQL_ADDRESS", "postgres://app:secret@db:5432/pacekeeper?sslmode=disable")
	t.Setenv("PSQL_RUN_MIGRATIONS", "true")
	t.Setenv("ENFORCER_ENABLED", "false")
	t.Setenv("ENFORCER_DAYPARTING_INTERVAL", "30s")
	t.Setenv("ENFORCER_BUDGET_INTERVAL", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, uint16(9090), cfg.HTTP.Port)
	require.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	require.Equal(t, "json", cfg.Log.SlogFormat())
	require.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	require.True(t, cfg.Psql.RunMigrations)
	require.False(t, cfg.Enforcer.Enabled)
	require.Equal(t, 30*time.Second, cfg.Enforcer.DaypartingInterval)
	require.Equal(t, 2*time.Minute, cfg.Enforcer.BudgetInterval)
}

func TestLoggerFallbacks(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("LOG_FORMAT", "xml")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	require.Equal(t, "text", cfg.Log.SlogFormat())
}

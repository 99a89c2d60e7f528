package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "LOG_LEVEL", "PUBLIC_DIR", "CORS_ORIGINS", "ENABLE_DOCS", "ENABLE_TEST_ROUTES", "SEED_ON_START"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./public", cfg.PublicDir)
	assert.Equal(t, "*", cfg.CORSOrigins)
	// empty strings are not booleans, so defaults apply
	assert.True(t, cfg.EnableDocs)
	assert.False(t, cfg.EnableTestRoutes)
	assert.False(t, cfg.SeedOnStart)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("ENABLE_DOCS", "false")
	t.Setenv("ENABLE_TEST_ROUTES", "1")
	t.Setenv("SEED_ON_START", "yes-please")

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.EnableDocs)
	assert.True(t, cfg.EnableTestRoutes)
	assert.False(t, cfg.SeedOnStart, "unparseable value falls back to the default")
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(Config{AppEnv: "production", LogLevel: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = NewLogger(Config{AppEnv: "development", LogLevel: "bogus"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

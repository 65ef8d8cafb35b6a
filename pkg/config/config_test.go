package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newskit/pkg/config"
)

type testConfig struct {
	SiteURL   string `env:"TEST_SITE_URL,required"`
	BatchSize int    `env:"TEST_BATCH_SIZE" envDefault:"10"`
	DevMode   bool   `env:"TEST_DEV_MODE" envDefault:"false"`
}

func TestLoad(t *testing.T) {
	// t.Setenv mutates process state, so these subtests stay sequential.

	t.Run("populates fields from the environment", func(t *testing.T) {
		t.Setenv("TEST_SITE_URL", "https://news.example.com")
		t.Setenv("TEST_BATCH_SIZE", "25")
		t.Setenv("TEST_DEV_MODE", "true")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://news.example.com", cfg.SiteURL)
		assert.Equal(t, 25, cfg.BatchSize)
		assert.True(t, cfg.DevMode)
	})

	t.Run("applies defaults for unset variables", func(t *testing.T) {
		t.Setenv("TEST_SITE_URL", "https://news.example.com")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 10, cfg.BatchSize)
		assert.False(t, cfg.DevMode)
	})

	t.Run("fails when a required variable is missing", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects a nil target", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics when loading fails", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("passes through on success", func(t *testing.T) {
		t.Setenv("TEST_SITE_URL", "https://news.example.com")

		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}

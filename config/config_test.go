package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CAMPUS_API_BASE_URL", "")
	t.Setenv("CAMPUS_REQUEST_TIMEOUT", "")
	t.Setenv("CAMPUS_STATE_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, DefaultBaseURL, cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "./state/campus.db", cfg.StateFile)
	require.Equal(t, int64(5*1024*1024), cfg.MaxUploadSize)
	require.Equal(t, 1600, cfg.IDCardMaxDim)
	require.Equal(t, 300, cfg.RateLimitRPM)
	require.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CAMPUS_API_BASE_URL", "http://localhost:5000/api")
	t.Setenv("CAMPUS_REQUEST_TIMEOUT", "5s")
	t.Setenv("CAMPUS_RATE_LIMIT_RPM", "60")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:5000/api", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, 60, cfg.RateLimitRPM)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("CAMPUS_REQUEST_TIMEOUT", "soon")
	t.Setenv("CAMPUS_RATE_LIMIT_RPM", "many")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, 300, cfg.RateLimitRPM)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		BaseURL:        "https://example.com/api",
		RequestTimeout: time.Second,
		StateFile:      "state.db",
		MaxUploadSize:  1024,
		IDCardMaxDim:   100,
	}

	t.Run("valid config passes", func(t *testing.T) {
		cfg := valid
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty base URL fails", func(t *testing.T) {
		cfg := valid
		cfg.BaseURL = "  "
		require.Error(t, cfg.Validate())
	})

	t.Run("non-http scheme fails", func(t *testing.T) {
		cfg := valid
		cfg.BaseURL = "ftp://example.com"
		require.Error(t, cfg.Validate())
	})

	t.Run("zero timeout fails", func(t *testing.T) {
		cfg := valid
		cfg.RequestTimeout = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("empty state file fails", func(t *testing.T) {
		cfg := valid
		cfg.StateFile = ""
		require.Error(t, cfg.Validate())
	})
}

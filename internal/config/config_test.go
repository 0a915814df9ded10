package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/hostel-admin/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("HOSTEL_API_URL", "")
	t.Setenv("HOSTEL_API_TIMEOUT", "")
	t.Setenv("HOSTEL_FALLBACK_DATA", "")
	t.Setenv("HOSTEL_STORAGE_DRIVER", "")

	c := config.New()
	require.Equal(t, config.DefaultAPIURL, c.GetAPIBaseURL())
	require.Equal(t, config.DefaultAPITimeout, c.GetRequestTimeout())
	require.False(t, c.GetFallbackDataEnabled())
	require.Equal(t, "sqlite", c.GetStorageDriver())
}

func TestOverrides(t *testing.T) {
	t.Run("timeout as duration", func(t *testing.T) {
		t.Setenv("HOSTEL_API_TIMEOUT", "45s")
		require.Equal(t, 45*time.Second, config.New().GetRequestTimeout())
	})

	t.Run("timeout as seconds", func(t *testing.T) {
		t.Setenv("HOSTEL_API_TIMEOUT", "12")
		require.Equal(t, 12*time.Second, config.New().GetRequestTimeout())
	})

	t.Run("bad timeout keeps default", func(t *testing.T) {
		t.Setenv("HOSTEL_API_TIMEOUT", "soon")
		require.Equal(t, config.DefaultAPITimeout, config.New().GetRequestTimeout())
	})

	t.Run("fallback flag", func(t *testing.T) {
		t.Setenv("HOSTEL_FALLBACK_DATA", "true")
		require.True(t, config.New().GetFallbackDataEnabled())
	})

	t.Run("env upper cased", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		require.Equal(t, "PROD", config.New().GetEnv())
	})

	t.Run("fake backend port gets colon", func(t *testing.T) {
		t.Setenv("FAKE_BACKEND_PORT", "9100")
		require.Equal(t, ":9100", config.New().GetFakeBackendPort())
	})

	t.Run("allowed origins", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
		origins := config.New().GetAllowedOrigins()
		require.True(t, origins.IsAllowedOrigin("http://b.test"))
		require.Equal(t, "http://a.test, http://b.test", origins.String())
	})
}

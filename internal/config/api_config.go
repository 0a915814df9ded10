package config

import "time"

const (
	apiURLVar       = "HOSTEL_API_URL"
	apiTimeoutVar   = "HOSTEL_API_TIMEOUT"
	fallbackDataVar = "HOSTEL_FALLBACK_DATA"

	DefaultAPIURL     = "https://api.hostel.example.edu/api/v1"
	DefaultAPITimeout = 30 * time.Second
)

type APIConfig interface {
	GetAPIBaseURL() string
	GetRequestTimeout() time.Duration
	GetFallbackDataEnabled() bool
}

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the REST backend base URL including its API prefix,
// e.g. "https://api.hostel.example.edu/api/v1".
func (API) GetAPIBaseURL() string {
	return GetEnv(apiURLVar, DefaultAPIURL)
}

func (API) GetRequestTimeout() time.Duration {
	return GetEnvDuration(apiTimeoutVar, DefaultAPITimeout)
}

// GetFallbackDataEnabled turns on placeholder data for endpoints that fail.
// Only meant for staging and demos.
func (API) GetFallbackDataEnabled() bool {
	return GetEnvBool(fallbackDataVar, false)
}

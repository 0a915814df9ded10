package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config interface {
	EnvConfig
	APIConfig
	StorageConfig
	CorsConfig
	FakeBackendConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	API
	Storage
	Cors
	FakeBackend
}

func New() Config {
	return mainConfig{}
}

// Load reads an optional .env file into the process environment and returns the
// environment backed Config. Variables already set in the environment win.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded, using process environment")
	}
	return New()
}

package config

import "fmt"

type FakeBackendConfig interface {
	GetFakeBackendPort() string
	GetFakeBackendSecret() string
}

type FakeBackend struct{}

var _ FakeBackendConfig = FakeBackend{}

func (FakeBackend) GetFakeBackendPort() string {
	port := GetEnv("FAKE_BACKEND_PORT", "8090")
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (FakeBackend) GetFakeBackendSecret() string {
	return GetEnv("FAKE_BACKEND_SECRET", "dev-secret")
}

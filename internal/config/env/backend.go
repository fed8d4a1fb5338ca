package env

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"slot_reel/internal/config"
)

const (
	backendURLEnvName     = "BACKEND_URL"
	backendTimeoutEnvName = "BACKEND_TIMEOUT"
	backendTokenEnvName   = "BACKEND_TOKEN"

	defaultBackendTimeout = 3 * time.Second
)

type backendConfig struct {
	url     string
	timeout time.Duration
	token   string
}

func NewBackendConfig() (config.BackendConfig, error) {
	url := strings.TrimRight(os.Getenv(backendURLEnvName), "/")
	if len(url) == 0 {
		return nil, errors.New("backend url not found")
	}

	timeout := defaultBackendTimeout
	if raw := os.Getenv(backendTimeoutEnvName); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid backend timeout: %w", err)
		}
		if parsed <= 0 {
			return nil, errors.New("backend timeout must be positive")
		}
		timeout = parsed
	}

	return &backendConfig{
		url:     url,
		timeout: timeout,
		token:   os.Getenv(backendTokenEnvName),
	}, nil
}

func (cfg *backendConfig) URL() string            { return cfg.url }
func (cfg *backendConfig) Timeout() time.Duration { return cfg.timeout }
func (cfg *backendConfig) Token() string          { return cfg.token }

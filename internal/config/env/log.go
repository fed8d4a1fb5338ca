package env

import (
	"os"

	"slot_reel/internal/config"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logDirEnvName   = "LOG_DIR"
)

type logConfig struct {
	level string
	dir   string
}

// NewLogConfig уровень по умолчанию info, пустой каталог - без файлов
func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if level == "" {
		level = "info"
	}

	return &logConfig{
		level: level,
		dir:   os.Getenv(logDirEnvName),
	}
}

func (cfg *logConfig) Level() string { return cfg.level }
func (cfg *logConfig) Dir() string   { return cfg.dir }

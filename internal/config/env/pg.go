package env

import (
	"errors"
	"fmt"
	"os"

	"slot_reel/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dsnName = "PG_DSN"
)

type pgConfig struct {
	dsn string
}

// NewPGConfig DSN проверяется сразу, чтобы опечатка всплыла до старта сервера
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}
	if _, err := pgxpool.ParseConfig(dsn); err != nil {
		return nil, fmt.Errorf("parse %s: %w", dsnName, err)
	}

	return &pgConfig{
		dsn: dsn,
	}, nil
}

func (cfg *pgConfig) DSN() string { return cfg.dsn }

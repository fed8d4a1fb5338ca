package reel

import (
	"context"
	"time"

	"slot_reel/internal/config"
	"slot_reel/internal/metrics"
	"slot_reel/internal/repository"
	"slot_reel/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TxManager - то, что нужно сервису от менеджера транзакций (trm.Manager подходит)
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serv struct {
	cfg       config.GameConfig
	userRepo  repository.UserRepository
	spinRepo  repository.SpinRepository
	seqRepo   repository.SequenceRepository
	txManager TxManager
	metrics   metrics.Recorder
	log       *zap.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewReelService Создать сервис барабана
func NewReelService(
	cfg config.GameConfig,
	userRepo repository.UserRepository,
	spinRepo repository.SpinRepository,
	seqRepo repository.SequenceRepository,
	txManager TxManager,
	recorder metrics.Recorder,
	log *zap.Logger,
) service.ReelService {
	return &serv{
		cfg:       cfg,
		userRepo:  userRepo,
		spinRepo:  spinRepo,
		seqRepo:   seqRepo,
		txManager: txManager,
		metrics:   recorder,
		log:       log,
		now:       time.Now,
		newID:     uuid.New,
	}
}

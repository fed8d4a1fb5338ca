package auth

import (
	"slot_reel/internal/config"
	"slot_reel/internal/metrics"
	"slot_reel/internal/repository"
	"slot_reel/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	gameCfg   config.GameConfig
	jwtConfig config.JWTConfig
	userRepo  repository.UserRepository
	metrics   metrics.Recorder
	log       *zap.Logger

	newName func() string
}

func NewAuthService(
	gameCfg config.GameConfig,
	jwtConfig config.JWTConfig,
	userRepo repository.UserRepository,
	recorder metrics.Recorder,
	log *zap.Logger,
) service.AuthService {
	return &serv{
		gameCfg:   gameCfg,
		jwtConfig: jwtConfig,
		userRepo:  userRepo,
		metrics:   recorder,
		log:       log,
		newName:   guestName,
	}
}

func guestName() string {
	return "guest-" + uuid.NewString()[:8]
}

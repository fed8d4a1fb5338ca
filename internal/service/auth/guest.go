package auth

import (
	"context"
	"fmt"

	"slot_reel/internal/model"
	"slot_reel/pkg/token"

	"go.uber.org/zap"
)

// Guest создаёт гостевого игрока со стартовым балансом и выдаёт access токен
func (s *serv) Guest(ctx context.Context) (*model.AuthData, error) {
	user := &model.User{
		Name:    s.newName(),
		Balance: s.gameCfg.StartingBalance(),
	}

	// Создать пользователя в бд
	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		user.ID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.metrics.GuestCreated()
	s.log.Info("guest created", zap.Int("user_id", user.ID), zap.String("name", user.Name))

	return &model.AuthData{
		AccessToken: accessToken,
		UserID:      user.ID,
		Balance:     user.Balance,
	}, nil
}

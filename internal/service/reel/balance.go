package reel

import (
	"context"
	"errors"
	"fmt"

	"slot_reel/internal/middleware"
	"slot_reel/internal/model"
	"slot_reel/internal/repository"
	"slot_reel/internal/service"
)

// Balance текущий баланс пользователя
func (s *serv) Balance(ctx context.Context) (*model.Data, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return &model.Data{Balance: balance}, nil
}

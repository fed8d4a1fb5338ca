package reel

import (
	"context"
	"errors"
	"fmt"

	"slot_reel/internal/middleware"
	"slot_reel/internal/model"
	"slot_reel/internal/repository"
	"slot_reel/internal/service"

	"go.uber.org/zap"
)

// ConfirmSpin списывает ставку и регистрирует спин.
// Баланс в ответе - авторитетный, клиент сверяет с ним свой прогноз
func (s *serv) ConfirmSpin(ctx context.Context) (*model.SpinConfirmation, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	bet := s.cfg.BetCost()
	var res *model.SpinConfirmation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalanceForUpdate(txCtx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return service.ErrUserNotFound
			}
			return fmt.Errorf("get balance: %w", err)
		}
		if balance < bet {
			return service.ErrNotEnoughBalance
		}

		// Списание ставки
		balance -= bet
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		spin := &model.Spin{
			ID:        s.newID(),
			UserID:    userID,
			Bet:       bet,
			CreatedAt: s.now(),
		}
		if err := s.spinRepo.CreateSpin(txCtx, spin); err != nil {
			return fmt.Errorf("create spin: %w", err)
		}

		res = &model.SpinConfirmation{
			SpinID:  spin.ID,
			Bet:     bet,
			Balance: balance,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, service.ErrNotEnoughBalance) {
			s.metrics.SpinRejected("balance")
		}
		return nil, err
	}

	s.metrics.SpinConfirmed(bet)
	s.log.Debug("spin confirmed",
		zap.Int("user_id", userID),
		zap.String("spin_id", res.SpinID.String()),
		zap.Int("balance", res.Balance),
	)

	return res, nil
}

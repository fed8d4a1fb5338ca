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

// ReportWin начисляет выигрыш по спину. Один раз на спин,
// сумма должна быть ставкой, умноженной на число совпадений (2..видимых символов)
func (s *serv) ReportWin(ctx context.Context, report model.WinReport) (*model.WinAck, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	var ack *model.WinAck

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		spin, err := s.spinRepo.GetSpinForUpdate(txCtx, report.SpinID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return service.ErrSpinNotFound
			}
			return fmt.Errorf("get spin: %w", err)
		}
		// Чужой спин для клиента выглядит как несуществующий
		if spin.UserID != userID {
			return service.ErrSpinNotFound
		}
		if spin.WinReported {
			return service.ErrWinAlreadyReported
		}
		if !s.validWin(spin.Bet, report.Amount) {
			return service.ErrInvalidWin
		}

		balance, err := s.userRepo.GetBalanceForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}

		// Начисление выигрыша
		balance += report.Amount
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		if err := s.spinRepo.SetWin(txCtx, spin.ID, report.Amount); err != nil {
			return fmt.Errorf("set win: %w", err)
		}

		ack = &model.WinAck{
			SpinID:  spin.ID,
			Amount:  report.Amount,
			Balance: balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.WinReported(ack.Amount)
	s.log.Info("win reported",
		zap.Int("user_id", userID),
		zap.String("spin_id", ack.SpinID.String()),
		zap.Int("amount", ack.Amount),
		zap.Int("balance", ack.Balance),
	)

	return ack, nil
}

func (s *serv) validWin(bet, amount int) bool {
	if bet <= 0 || amount <= 0 || amount%bet != 0 {
		return false
	}
	count := amount / bet
	return count >= 2 && count <= s.cfg.VisibleSymbols()
}

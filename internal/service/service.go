package service

import (
	"context"
	"errors"

	"slot_reel/internal/model"
)

var (
	ErrUnauthorized       = errors.New("user id not found in context")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotEnoughBalance   = errors.New("not enough balance")
	ErrSequenceNotFound   = errors.New("reel sequence not found")
	ErrSpinNotFound       = errors.New("spin not found")
	ErrWinAlreadyReported = errors.New("win already reported for this spin")
	ErrInvalidWin         = errors.New("win amount does not match the bet")
)

// ReelService - серверная сторона барабана: лента, баланс, подтверждение спина и выигрыша
type ReelService interface {
	Sequence(ctx context.Context) (*model.ReelSequence, error)
	Balance(ctx context.Context) (*model.Data, error)
	ConfirmSpin(ctx context.Context) (*model.SpinConfirmation, error)
	ReportWin(ctx context.Context, report model.WinReport) (*model.WinAck, error)
	// EnsureSequence кладёт ленту из конфига в БД при старте
	EnsureSequence(ctx context.Context) error
}

type AuthService interface {
	Guest(ctx context.Context) (*model.AuthData, error)
}

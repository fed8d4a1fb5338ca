package repository

import (
	"context"
	"errors"

	"slot_reel/internal/model"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)

	GetBalance(ctx context.Context, id int) (int, error)
	// GetBalanceForUpdate блокирует строку пользователя до конца транзакции
	GetBalanceForUpdate(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}

type SpinRepository interface {
	CreateSpin(ctx context.Context, spin *model.Spin) error
	GetSpinForUpdate(ctx context.Context, id uuid.UUID) (*model.Spin, error)
	SetWin(ctx context.Context, id uuid.UUID, win int) error
}

type SequenceRepository interface {
	GetSequence(ctx context.Context, name string) ([]int, error)
	SaveSequence(ctx context.Context, seq model.ReelSequence) error
}

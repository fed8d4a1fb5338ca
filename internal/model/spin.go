package model

import (
	"time"

	"github.com/google/uuid"
)

type Spin struct {
	ID          uuid.UUID
	UserID      int
	Bet         int
	Win         int
	WinReported bool
	CreatedAt   time.Time
}

// SpinConfirmation ответ на подтверждение спина: ставка списана
type SpinConfirmation struct {
	SpinID  uuid.UUID
	Bet     int
	Balance int // Баланс после списания
}

type WinReport struct {
	SpinID uuid.UUID
	Amount int
}

type WinAck struct {
	SpinID  uuid.UUID
	Amount  int
	Balance int // Баланс после начисления
}

type ReelSequence struct {
	Name    string
	Symbols []int
}

type Data struct {
	Balance int
}

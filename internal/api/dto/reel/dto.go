package reel

type SequenceResponse struct {
	Name    string `json:"name"`    // Имя ленты
	Symbols []int  `json:"symbols"` // ID символов по порядку
}

type DataResponse struct {
	Balance int `json:"balance"` // Баланс пользователя
}

type SpinResponse struct {
	SpinID  string `json:"spin_id"` // UUID спина, нужен для /reel/win
	Bet     int    `json:"bet"`     // Списанная ставка
	Balance int    `json:"balance"` // Баланс после списания
}

type WinRequest struct {
	SpinID string `json:"spin_id"`
	Amount int    `json:"amount"` // Ставка * число совпадений
}

type WinResponse struct {
	SpinID  string `json:"spin_id"`
	Amount  int    `json:"amount"`
	Balance int    `json:"balance"` // Баланс после начисления
}

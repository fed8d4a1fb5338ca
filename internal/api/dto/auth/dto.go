package auth

type GuestResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int    `json:"user_id"`
	Balance     int    `json:"balance"` // Стартовый баланс
}

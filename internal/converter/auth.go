package converter

import (
	"slot_reel/internal/api/dto/auth"
	"slot_reel/internal/model"
)

func ToGuestResponse(data model.AuthData) auth.GuestResponse {
	return auth.GuestResponse{
		AccessToken: data.AccessToken,
		UserID:      data.UserID,
		Balance:     data.Balance,
	}
}

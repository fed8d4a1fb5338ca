package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID      int
	Name    string
	Balance int
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData результат гостевого входа
type AuthData struct {
	AccessToken string
	UserID      int
	Balance     int
}

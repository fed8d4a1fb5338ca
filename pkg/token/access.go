package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"slot_reel/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer       = "slot_reel"
	guestSubject = "guest"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateAccessToken токен гостя, ID игрока лежит в jti
func GenerateAccessToken(userID int, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.Itoa(userID),
			Issuer:    issuer,
			Subject:   guestSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.UserClaims, error) {
	claims := &model.UserClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims, nil
}

// UserID проверяет токен и возвращает ID игрока
func UserID(tokenStr string, secretKey []byte) (int, error) {
	claims, err := VerifyToken(tokenStr, secretKey)
	if err != nil {
		return 0, err
	}

	id, err := strconv.Atoi(claims.ID)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad user id %q", ErrInvalidToken, claims.ID)
	}
	return id, nil
}

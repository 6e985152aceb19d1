package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues the dashboard access token.
func GenerateToken(secret, userID, username string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"username":   username,
		"token_type": "access",
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

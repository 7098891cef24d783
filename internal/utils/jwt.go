package utils

import (
	"fmt"
	"time"

	"hirehub/internal/config"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateToken issues a signed bearer token for the user.
func GenerateToken(userID uint) (string, error) {
	ttl := 72 * time.Hour
	if config.Conf != nil && config.Conf.Auth.TokenTTLHrs > 0 {
		ttl = time.Duration(config.Conf.Auth.TokenTTLHrs) * time.Hour
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

// ParseToken validates a bearer token and returns the user ID it carries.
func ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("missing user ID in token")
	}
	return uint(userIDFloat), nil
}

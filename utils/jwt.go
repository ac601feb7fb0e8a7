package utils

import (
	"errors"
	"fmt"
	"time"

	"seatwise/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "seatwise-dev"
	}
	return []byte(secret)
}

// GenerateChannelToken creates a signed JWT for a booking channel. Mutating
// endpoints require one; the channel claim names the source the caller may
// book under.
func GenerateChannelToken(channel string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"channel": channel,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractChannelFromToken extracts the booking channel from a valid token.
func ExtractChannelFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	channel, ok := claims["channel"].(string)
	if !ok || channel == "" {
		return "", fmt.Errorf("token does not contain a valid 'channel' claim")
	}
	return channel, nil
}

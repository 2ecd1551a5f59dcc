package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"salonbook/config"
)

func sessionSecret() []byte {
	secret := config.AppConfig.SessionTokenSecret
	if secret == "" {
		secret = "salonbook-dev"
	}
	return []byte(secret)
}

// GenerateSessionToken creates a signed token binding a wizard session ID
// to its creator. The token expires together with the session.
func GenerateSessionToken(sessionID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// ValidateSessionToken parses a session token and returns the session ID
// it was issued for.
func ValidateSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sessionSecret(), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}
	sessionID, ok := claims["sub"].(string)
	if !ok || sessionID == "" {
		return "", errors.New("session token missing subject")
	}
	return sessionID, nil
}

package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs an identity token for username. With ttlHours <= 0 the
// token carries no exp claim and stays valid indefinitely.
func GenerateJWT(username string, secret string, ttlHours int) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"iat":      time.Now().Unix(),
	}
	if ttlHours > 0 {
		claims["exp"] = time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT returns the username embedded in tokenStr if the signature and
// claims check out.
func ParseJWT(tokenStr string, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenMalformed
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenMalformed
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", jwt.ErrTokenMalformed
	}
	return username, nil
}

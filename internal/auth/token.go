package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService mints and verifies HS256 session tokens.
type TokenService struct {
	secret string
	now    func() time.Time
}

// NewTokenService builds a token service signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: secret, now: time.Now}
}

// Generate returns a signed session token for the username.
func (s *TokenService) Generate(username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username is required")
	}
	if s.secret == "" {
		return "", fmt.Errorf("token secret is not configured")
	}

	claims := jwt.MapClaims{
		"username": username,
		"exp":      s.now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify parses a session token and returns the username it was issued to.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	if username == "" {
		return "", ErrInvalidToken
	}
	return username, nil
}

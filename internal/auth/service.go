// Package auth gates the admin surface. Authentication is deliberately a
// single hardcoded credential check from configuration; there is no user
// table and no session cookie, only a short-lived bearer token.
package auth

import (
	"time"

	"homefinder-backend/internal/config"
	apperrors "homefinder-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued admin token stays valid
const TokenTTL = 24 * time.Hour

// Service issues and verifies admin bearer tokens
type Service struct {
	adminEmail    string
	adminPassword string
	secret        []byte
}

// NewService creates an auth service from configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		secret:        []byte(cfg.JWTSecret),
	}
}

// Claims are the JWT claims carried by an admin token
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Login checks the credentials against configuration and returns a signed
// token on success
func (s *Service) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.NewValidationError("credentials", "email and password are required")
	}
	if email != s.adminEmail || password != s.adminPassword {
		return "", apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses and validates a bearer token, returning its claims
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"onboarding_backend/internal/platform/config"
)

// ErrInvalidRefreshToken is returned for any refresh token that fails
// verification. The reason (malformed, expired, forged) is deliberately
// not distinguished.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// Generator defines the token operations used by the employee usecase.
type Generator interface {
	// GenerateAccessToken creates a short-lived signed access token
	// carrying the employee email.
	GenerateAccessToken(employeeEmail string) (string, error)

	// GenerateRefreshToken creates a longer-lived signed refresh token
	// carrying the employee email, signed with the refresh secret.
	GenerateRefreshToken(employeeEmail string) (string, error)

	// VerifyRefreshToken checks a refresh token's signature and expiry and
	// returns the embedded employee email.
	VerifyRefreshToken(token string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	accessSecret  []byte
	accessExpiry  time.Duration
	refreshSecret []byte
	refreshExpiry time.Duration
}

// NewGenerator creates a Generator from the loaded JWT configuration.
func NewGenerator(cfg config.JWTConfig) Generator {
	return &generator{
		accessSecret:  []byte(cfg.AccessSecret),
		accessExpiry:  cfg.AccessExpiry,
		refreshSecret: []byte(cfg.RefreshSecret),
		refreshExpiry: cfg.RefreshExpiry,
	}
}

func (g *generator) GenerateAccessToken(employeeEmail string) (string, error) {
	return sign(employeeEmail, g.accessSecret, g.accessExpiry)
}

func (g *generator) GenerateRefreshToken(employeeEmail string) (string, error) {
	return sign(employeeEmail, g.refreshSecret, g.refreshExpiry)
}

// sign creates an HS256 token with the employee email as the identity claim.
func sign(employeeEmail string, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"employeeEmail": employeeEmail,
		"exp":           now.Add(expiry).Unix(),
		"iat":           now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (g *generator) VerifyRefreshToken(tokenStr string) (string, error) {
	return verify(tokenStr, g.refreshSecret)
}

// verify parses a token, checks the HMAC signature and expiry, and extracts
// the employee email claim.
func verify(tokenStr string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidRefreshToken
	}
	email, ok := claims["employeeEmail"].(string)
	if !ok || email == "" {
		return "", ErrInvalidRefreshToken
	}
	return email, nil
}

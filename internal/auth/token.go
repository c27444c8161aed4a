// Package auth issues and verifies bearer tokens backed by stored sessions.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
)

var (
	// ErrInvalidToken is returned for malformed, expired or badly signed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNoSession is returned when a valid token has no matching session.
	ErrNoSession = errors.New("session not found")
)

// Claims carried by an access token.
type Claims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

// NewToken signs an HS256 token for userID that expires after ttl.
func NewToken(secret string, userID int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(secret, raw string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid || claims.UserID < 1 {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// SessionFinder looks up the session that holds a token.
type SessionFinder interface {
	FindByToken(ctx context.Context, token string) (*model.Session, error)
}

// Authenticator resolves a bearer token to a user id.
type Authenticator struct {
	secret   string
	sessions SessionFinder
}

// NewAuthenticator constructs an Authenticator.
func NewAuthenticator(secret string, sessions SessionFinder) *Authenticator {
	return &Authenticator{secret: secret, sessions: sessions}
}

// Authenticate returns the user id of a valid token that has a live session.
func (a *Authenticator) Authenticate(ctx context.Context, raw string) (int, error) {
	claims, err := ParseToken(a.secret, raw)
	if err != nil {
		return 0, err
	}

	session, err := a.sessions.FindByToken(ctx, raw)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNoSession
		}
		return 0, fmt.Errorf("find session: %w", err)
	}
	if session.UserID != claims.UserID {
		return 0, ErrNoSession
	}
	return claims.UserID, nil
}

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
)

type fakeSessions struct {
	byToken map[string]model.Session
	err     error
}

func (f *fakeSessions) FindByToken(_ context.Context, token string) (*model.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byToken[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func TestNewTokenRoundTrip(t *testing.T) {
	raw, err := NewToken("secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}
	claims, err := ParseToken("secret", raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.ID == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseToken_Rejects(t *testing.T) {
	expired, _ := NewToken("secret", 1, -time.Minute)
	zeroUser, _ := NewToken("secret", 0, time.Hour)
	wrongKey, _ := NewToken("other", 1, time.Hour)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := map[string]string{
		"expired":   expired,
		"zero user": zeroUser,
		"wrong key": wrongKey,
		"alg none":  none,
		"garbage":   "not-a-token",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseToken("secret", raw); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestAuthenticator(t *testing.T) {
	good, _ := NewToken("secret", 7, time.Hour)
	orphan, _ := NewToken("secret", 7, time.Hour)
	stolen, _ := NewToken("secret", 8, time.Hour)

	sessions := &fakeSessions{byToken: map[string]model.Session{
		good:   {ID: 1, UserID: 7, Token: good},
		stolen: {ID: 2, UserID: 9, Token: stolen},
	}}
	a := NewAuthenticator("secret", sessions)
	ctx := context.Background()

	t.Run("valid session", func(t *testing.T) {
		userID, err := a.Authenticate(ctx, good)
		if err != nil || userID != 7 {
			t.Fatalf("expected user 7, got %d, %v", userID, err)
		}
	})

	t.Run("no session", func(t *testing.T) {
		if _, err := a.Authenticate(ctx, orphan); !errors.Is(err, ErrNoSession) {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("session of another user", func(t *testing.T) {
		if _, err := a.Authenticate(ctx, stolen); !errors.Is(err, ErrNoSession) {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		failing := NewAuthenticator("secret", &fakeSessions{err: errors.New("db down")})
		_, err := failing.Authenticate(ctx, good)
		if err == nil || errors.Is(err, ErrNoSession) || errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}

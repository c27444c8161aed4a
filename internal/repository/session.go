package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
)

// SessionRepository handles persistence for login sessions.
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// FindByToken returns the session that holds token or ErrNotFound.
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	var s model.Session
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, user_id, token, created_at, updated_at FROM sessions WHERE token = $1`,
		token,
	).Scan(&s.ID, &s.UserID, &s.Token, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Create stores a session for userID.
func (r *SessionRepository) Create(ctx context.Context, userID int, token string) (*model.Session, error) {
	s := model.Session{UserID: userID, Token: token}
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO sessions (user_id, token) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		userID, token,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return &s, nil
}

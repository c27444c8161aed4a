package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
)

// EnrollmentRepository reads attendee enrollments.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// FindByUserID returns the enrollment owned by userID or ErrNotFound.
func (r *EnrollmentRepository) FindByUserID(ctx context.Context, userID int) (*model.Enrollment, error) {
	var e model.Enrollment
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, name, cpf, birthday, phone, user_id, created_at, updated_at
		 FROM enrollments WHERE user_id = $1`,
		userID,
	).Scan(&e.ID, &e.Name, &e.CPF, &e.Birthday, &e.Phone, &e.UserID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return &e, nil
}

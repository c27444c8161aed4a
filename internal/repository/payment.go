package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
)

// PaymentRepository handles persistence for ticket payments.
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// FindByTicketID returns the payment of a ticket or ErrNotFound.
func (r *PaymentRepository) FindByTicketID(ctx context.Context, ticketID int) (*model.Payment, error) {
	var p model.Payment
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, ticket_id, value, card_issuer, card_last_digits, created_at, updated_at
		 FROM payments WHERE ticket_id = $1`,
		ticketID,
	).Scan(&p.ID, &p.TicketID, &p.Value, &p.CardIssuer, &p.CardLastDigits, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// Create inserts a payment. A second payment for the same ticket returns ErrDuplicate.
func (r *PaymentRepository) Create(ctx context.Context, p model.Payment) (*model.Payment, error) {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO payments (ticket_id, value, card_issuer, card_last_digits)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		p.TicketID, p.Value, p.CardIssuer, p.CardLastDigits,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return &p, nil
}

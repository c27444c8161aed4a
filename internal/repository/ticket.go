package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
)

const ticketWithTypeColumns = `t.id, t.status, t.ticket_type_id, t.enrollment_id, t.created_at, t.updated_at,
	tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at`

// TicketRepository handles persistence for ticket types and tickets.
type TicketRepository struct {
	db *pgxpool.Pool
}

// NewTicketRepository constructs a TicketRepository.
func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{db: db}
}

// ListTypes returns the ticket catalog ordered by id.
func (r *TicketRepository) ListTypes(ctx context.Context) ([]model.TicketType, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		 FROM ticket_types ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	defer rows.Close()

	types := []model.TicketType{}
	for rows.Next() {
		var tt model.TicketType
		if err := rows.Scan(&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket type: %w", err)
		}
		types = append(types, tt)
	}
	return types, rows.Err()
}

// FindTypeByID returns a single ticket type or ErrNotFound.
func (r *TicketRepository) FindTypeByID(ctx context.Context, id int) (*model.TicketType, error) {
	var tt model.TicketType
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		 FROM ticket_types WHERE id = $1`,
		id,
	).Scan(&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket type: %w", err)
	}
	return &tt, nil
}

// FindByEnrollmentID returns the enrollment's most recent ticket with its type, or ErrNotFound.
func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int) (*model.Ticket, error) {
	row := conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+ticketWithTypeColumns+`
		 FROM tickets t JOIN ticket_types tt ON tt.id = t.ticket_type_id
		 WHERE t.enrollment_id = $1
		 ORDER BY t.created_at DESC, t.id DESC
		 LIMIT 1`,
		enrollmentID,
	)
	return scanTicketWithType(row, "get ticket by enrollment")
}

// FindByID returns a ticket with its type or ErrNotFound.
func (r *TicketRepository) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	row := conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+ticketWithTypeColumns+`
		 FROM tickets t JOIN ticket_types tt ON tt.id = t.ticket_type_id
		 WHERE t.id = $1`,
		id,
	)
	return scanTicketWithType(row, "get ticket")
}

// Create inserts a RESERVED ticket for the enrollment.
func (r *TicketRepository) Create(ctx context.Context, ticketTypeID, enrollmentID int) (*model.Ticket, error) {
	t := model.Ticket{Status: model.TicketReserved, TicketTypeID: ticketTypeID, EnrollmentID: enrollmentID}
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO tickets (ticket_type_id, enrollment_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		ticketTypeID, enrollmentID, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert ticket: %w", err)
	}
	return &t, nil
}

// MarkPaid flips the ticket status to PAID.
func (r *TicketRepository) MarkPaid(ctx context.Context, id int) error {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE tickets SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, model.TicketPaid,
	)
	if err != nil {
		return fmt.Errorf("mark ticket paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTicketWithType(row pgx.Row, op string) (*model.Ticket, error) {
	var t model.Ticket
	var tt model.TicketType
	err := row.Scan(
		&t.ID, &t.Status, &t.TicketTypeID, &t.EnrollmentID, &t.CreatedAt, &t.UpdatedAt,
		&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	t.TicketType = &tt
	return &t, nil
}

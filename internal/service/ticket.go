package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
)

// TicketService serves the ticket catalog and the caller's ticket.
type TicketService struct {
	enrollments EnrollmentFinder
	tickets     TicketStore
}

// NewTicketService constructs a TicketService.
func NewTicketService(enrollments EnrollmentFinder, tickets TicketStore) *TicketService {
	return &TicketService{enrollments: enrollments, tickets: tickets}
}

func (s *TicketService) ListTypes(ctx context.Context) ([]model.TicketType, error) {
	types, err := s.tickets.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	return types, nil
}

// GetUserTicket returns the user's ticket with its type.
func (s *TicketService) GetUserTicket(ctx context.Context, userID int) (*model.Ticket, error) {
	enrollment, err := s.enrollment(ctx, userID)
	if err != nil {
		return nil, err
	}
	t, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// CreateTicket reserves a ticket of ticketTypeID for the user's enrollment.
func (s *TicketService) CreateTicket(ctx context.Context, userID, ticketTypeID int) (*model.Ticket, error) {
	enrollment, err := s.enrollment(ctx, userID)
	if err != nil {
		return nil, err
	}

	tt, err := s.tickets.FindTypeByID(ctx, ticketTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket type: %w", err)
	}

	t, err := s.tickets.Create(ctx, tt.ID, enrollment.ID)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	t.TicketType = tt
	return t, nil
}

func (s *TicketService) enrollment(ctx context.Context, userID int) (*model.Enrollment, error) {
	e, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return e, nil
}

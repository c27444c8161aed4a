package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
)

// PaymentService reads and settles ticket payments.
type PaymentService struct {
	tx          Transactor
	enrollments EnrollmentFinder
	tickets     TicketStore
	payments    PaymentStore
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(tx Transactor, enrollments EnrollmentFinder, tickets TicketStore, payments PaymentStore) *PaymentService {
	return &PaymentService{tx: tx, enrollments: enrollments, tickets: tickets, payments: payments}
}

// GetPayment returns the payment of a ticket owned by userID.
func (s *PaymentService) GetPayment(ctx context.Context, userID, ticketID int) (*model.Payment, error) {
	if _, err := s.ownedTicket(ctx, userID, ticketID); err != nil {
		return nil, err
	}
	p, err := s.payments.FindByTicketID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// ProcessPayment stores a payment for the ticket's price and marks the ticket PAID.
func (s *PaymentService) ProcessPayment(ctx context.Context, userID int, req model.PaymentRequest) (*model.Payment, error) {
	if req.TicketID < 1 || req.CardData == nil || len(req.CardData.Number) < 4 {
		return nil, ErrInvalidInput
	}

	var payment *model.Payment
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		ticket, err := s.ownedTicket(ctx, userID, req.TicketID)
		if err != nil {
			return err
		}
		payment, err = s.pay(ctx, ticket, *req.CardData)
		return err
	})
	if err != nil {
		return nil, wrapInternal("process payment", err)
	}
	return payment, nil
}

func (s *PaymentService) pay(ctx context.Context, ticket *model.Ticket, card model.CardData) (*model.Payment, error) {
	if ticket.TicketType == nil {
		return nil, fmt.Errorf("ticket %d has no type loaded", ticket.ID)
	}
	p, err := s.payments.Create(ctx, model.Payment{
		TicketID:       ticket.ID,
		Value:          ticket.TicketType.Price,
		CardIssuer:     card.Issuer,
		CardLastDigits: card.Number[len(card.Number)-4:],
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrInvalidInput
		}
		return nil, err
	}
	if err := s.tickets.MarkPaid(ctx, ticket.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// ownedTicket returns ErrNotFound for an unknown ticket and ErrUnauthorized when
// the ticket's enrollment is not the user's.
func (s *PaymentService) ownedTicket(ctx context.Context, userID, ticketID int) (*model.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	if ticket.EnrollmentID != enrollment.ID {
		return nil, ErrUnauthorized
	}
	return ticket, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
)

// BookingService creates and moves room bookings.
type BookingService struct {
	tx          Transactor
	eligibility *EligibilityChecker
	bookings    BookingStore
}

// NewBookingService constructs a BookingService.
func NewBookingService(tx Transactor, eligibility *EligibilityChecker, bookings BookingStore) *BookingService {
	return &BookingService{tx: tx, eligibility: eligibility, bookings: bookings}
}

// GetByUserID returns the user's booking with its room.
func (s *BookingService) GetByUserID(ctx context.Context, userID int) (*model.BookingWithRoom, error) {
	b, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// Create books roomID for userID and returns the booking id.
//
// Eligibility, the capacity check and the insert share one transaction that holds
// the room row lock, so two requests for the last free slot cannot both succeed.
func (s *BookingService) Create(ctx context.Context, userID, roomID int) (int, error) {
	var id int
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.validate(ctx, userID, roomID); err != nil {
			return err
		}
		b, err := s.bookings.Create(ctx, userID, roomID)
		if err != nil {
			return err
		}
		id = b.ID
		return nil
	})
	if err != nil {
		return 0, wrapInternal("create booking", err)
	}
	return id, nil
}

// Update moves the user's booking to roomID. A booking that is missing or
// belongs to someone else fails with ErrBookingNotOwned.
func (s *BookingService) Update(ctx context.Context, userID, bookingID, roomID int) (int, error) {
	var id int
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.validate(ctx, userID, roomID); err != nil {
			return err
		}

		current, err := s.bookings.FindByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotOwned
			}
			return err
		}
		if current.UserID != userID {
			return ErrBookingNotOwned
		}

		b, err := s.bookings.UpdateRoom(ctx, bookingID, roomID)
		if err != nil {
			return err
		}
		id = b.ID
		return nil
	})
	if err != nil {
		return 0, wrapInternal("update booking", err)
	}
	return id, nil
}

func (s *BookingService) validate(ctx context.Context, userID, roomID int) error {
	eligibility, err := s.eligibility.Check(ctx, userID)
	if err != nil {
		return err
	}
	switch eligibility {
	case Eligible:
	case EnrollmentNotFound:
		return ErrNotFound
	case TicketNotFound, InvalidTicket:
		return ErrInvalidTicket
	default:
		return fmt.Errorf("unexpected eligibility %s", eligibility)
	}

	availability, err := checkRoom(ctx, s.bookings, roomID)
	if err != nil {
		return err
	}
	switch availability {
	case RoomAvailable:
		return nil
	case RoomNotFound:
		return ErrNotFound
	case RoomFull:
		return ErrRoomIsFull
	default:
		return fmt.Errorf("unexpected room availability %s", availability)
	}
}

var kinds = []error{
	ErrNotFound, ErrInvalidTicket, ErrRoomIsFull, ErrCannotListHotels,
	ErrUnauthorized, ErrBookingNotOwned, ErrInvalidInput,
}

// wrapInternal returns domain error kinds unchanged and wraps anything else with op.
func wrapInternal(op string, err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

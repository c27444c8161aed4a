package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
)

// Eligibility is the outcome of checking whether a user may use the hotel catalog.
type Eligibility int

const (
	Eligible Eligibility = iota
	EnrollmentNotFound
	TicketNotFound
	InvalidTicket
)

func (e Eligibility) String() string {
	switch e {
	case Eligible:
		return "eligible"
	case EnrollmentNotFound:
		return "enrollment not found"
	case TicketNotFound:
		return "ticket not found"
	case InvalidTicket:
		return "invalid ticket"
	default:
		return fmt.Sprintf("Eligibility(%d)", int(e))
	}
}

// EvaluateHotelAccess is the single rule for hotel access: an enrollment with a
// PAID, in-person ticket whose type includes the hotel. Nil means absent.
func EvaluateHotelAccess(enrollment *model.Enrollment, ticket *model.Ticket) Eligibility {
	if enrollment == nil {
		return EnrollmentNotFound
	}
	if ticket == nil {
		return TicketNotFound
	}
	if ticket.Status != model.TicketPaid {
		return InvalidTicket
	}
	if ticket.TicketType == nil || !ticket.TicketType.IncludesHotel || ticket.TicketType.IsRemote {
		return InvalidTicket
	}
	return Eligible
}

// RoomAvailability is the outcome of checking a room for free capacity.
type RoomAvailability int

const (
	RoomAvailable RoomAvailability = iota
	RoomNotFound
	RoomFull
)

func (a RoomAvailability) String() string {
	switch a {
	case RoomAvailable:
		return "available"
	case RoomNotFound:
		return "room not found"
	case RoomFull:
		return "room full"
	default:
		return fmt.Sprintf("RoomAvailability(%d)", int(a))
	}
}

// EligibilityChecker loads the user's enrollment and ticket and evaluates hotel access.
type EligibilityChecker struct {
	enrollments EnrollmentFinder
	tickets     TicketFinder
}

func NewEligibilityChecker(enrollments EnrollmentFinder, tickets TicketFinder) *EligibilityChecker {
	return &EligibilityChecker{enrollments: enrollments, tickets: tickets}
}

// Check reports the user's hotel eligibility. Only store faults are returned as errors.
func (c *EligibilityChecker) Check(ctx context.Context, userID int) (Eligibility, error) {
	enrollment, err := c.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return EnrollmentNotFound, nil
		}
		return 0, fmt.Errorf("find enrollment: %w", err)
	}

	ticket, err := c.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return TicketNotFound, nil
		}
		return 0, fmt.Errorf("find ticket: %w", err)
	}
	return EvaluateHotelAccess(enrollment, ticket), nil
}

// checkRoom locks the room (when ctx carries a transaction) and compares its
// bookings against capacity.
func checkRoom(ctx context.Context, bookings BookingStore, roomID int) (RoomAvailability, error) {
	room, err := bookings.LockRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return RoomNotFound, nil
		}
		return 0, fmt.Errorf("find room: %w", err)
	}

	n, err := bookings.CountByRoomID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if room.IsFull(n) {
		return RoomFull, nil
	}
	return RoomAvailable, nil
}

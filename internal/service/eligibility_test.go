package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
)

func TestEvaluateHotelAccess(t *testing.T) {
	enrollment := &model.Enrollment{ID: 1}
	hotelType := &model.TicketType{IncludesHotel: true}
	ticket := func(status model.TicketStatus, tt *model.TicketType) *model.Ticket {
		return &model.Ticket{Status: status, TicketType: tt}
	}

	cases := []struct {
		name       string
		enrollment *model.Enrollment
		ticket     *model.Ticket
		want       Eligibility
	}{
		{"no enrollment", nil, ticket(model.TicketPaid, hotelType), EnrollmentNotFound},
		{"no ticket", enrollment, nil, TicketNotFound},
		{"reserved hotel ticket", enrollment, ticket(model.TicketReserved, hotelType), InvalidTicket},
		{"reserved remote ticket", enrollment, ticket(model.TicketReserved, &model.TicketType{IsRemote: true}), InvalidTicket},
		{"paid without hotel", enrollment, ticket(model.TicketPaid, &model.TicketType{}), InvalidTicket},
		{"paid remote with hotel", enrollment, ticket(model.TicketPaid, &model.TicketType{IsRemote: true, IncludesHotel: true}), InvalidTicket},
		{"paid without loaded type", enrollment, ticket(model.TicketPaid, nil), InvalidTicket},
		{"paid in-person hotel", enrollment, ticket(model.TicketPaid, hotelType), Eligible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EvaluateHotelAccess(tc.enrollment, tc.ticket); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestEligibilityChecker_Check(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	db.addEligibleUser(1)
	db.addEnrollment(2)
	c := newEligibility(db)

	if got, err := c.Check(ctx, 1); err != nil || got != Eligible {
		t.Fatalf("user 1: got %s, %v", got, err)
	}
	if got, err := c.Check(ctx, 2); err != nil || got != TicketNotFound {
		t.Fatalf("user 2: got %s, %v", got, err)
	}
	if got, err := c.Check(ctx, 3); err != nil || got != EnrollmentNotFound {
		t.Fatalf("user 3: got %s, %v", got, err)
	}

	db.failWith = errStore
	if _, err := c.Check(ctx, 1); !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestCheckRoom(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	roomID := db.addRoom(1, 2)
	bookings := fakeBookings{db}

	if got, _ := checkRoom(ctx, bookings, roomID+50); got != RoomNotFound {
		t.Fatalf("expected RoomNotFound, got %s", got)
	}
	if got, _ := checkRoom(ctx, bookings, roomID); got != RoomAvailable {
		t.Fatalf("expected RoomAvailable, got %s", got)
	}
	_, _ = bookings.Create(ctx, 1, roomID)
	_, _ = bookings.Create(ctx, 2, roomID)
	if got, _ := checkRoom(ctx, bookings, roomID); got != RoomFull {
		t.Fatalf("expected RoomFull, got %s", got)
	}
}

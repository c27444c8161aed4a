package service

import (
	"context"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
)

// Transactor runs fn in one database transaction carried by ctx.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type EnrollmentFinder interface {
	FindByUserID(ctx context.Context, userID int) (*model.Enrollment, error)
}

type TicketFinder interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int) (*model.Ticket, error)
}

type TicketStore interface {
	TicketFinder
	ListTypes(ctx context.Context) ([]model.TicketType, error)
	FindTypeByID(ctx context.Context, id int) (*model.TicketType, error)
	FindByID(ctx context.Context, id int) (*model.Ticket, error)
	Create(ctx context.Context, ticketTypeID, enrollmentID int) (*model.Ticket, error)
	MarkPaid(ctx context.Context, id int) error
}

type PaymentStore interface {
	FindByTicketID(ctx context.Context, ticketID int) (*model.Payment, error)
	Create(ctx context.Context, p model.Payment) (*model.Payment, error)
}

// HotelCatalog is implemented by the hotel repository and by its cache.
type HotelCatalog interface {
	List(ctx context.Context) ([]model.Hotel, error)
	FindByID(ctx context.Context, id int) (*model.Hotel, error)
	ListRooms(ctx context.Context, hotelID int) ([]model.Room, error)
}

type BookingStore interface {
	LockRoom(ctx context.Context, roomID int) (*model.Room, error)
	CountByRoomID(ctx context.Context, roomID int) (int, error)
	Create(ctx context.Context, userID, roomID int) (*model.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int) (*model.Booking, error)
	FindByID(ctx context.Context, id int) (*model.Booking, error)
	FindByUserID(ctx context.Context, userID int) (*model.BookingWithRoom, error)
}

// Package model defines the core domain types for the event and hotel booking system.
package model

import "time"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

// Session binds an issued bearer token to a user.
type Session struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Enrollment is the attendee record a user must complete before buying a ticket.
type Enrollment struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `json:"phone"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TicketType is an entry of the static ticket catalog.
type TicketType struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Ticket belongs to one enrollment. TicketType is populated on reads that join it.
type Ticket struct {
	ID           int          `json:"id"`
	Status       TicketStatus `json:"status"`
	TicketTypeID int          `json:"ticketTypeId"`
	EnrollmentID int          `json:"enrollmentId"`
	TicketType   *TicketType  `json:"TicketType,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Payment records the settlement of a ticket.
type Payment struct {
	ID             int       `json:"id"`
	TicketID       int       `json:"ticketId"`
	Value          int       `json:"value"`
	CardIssuer     string    `json:"cardIssuer"`
	CardLastDigits string    `json:"cardLastDigits"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Hotel is a lodging option offered to attendees with a hotel ticket.
type Hotel struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Room belongs to one hotel and holds up to Capacity bookings.
type Room struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int       `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsFull reports whether bookings have reached the room's capacity.
func (r *Room) IsFull(bookings int) bool {
	return bookings >= r.Capacity
}

// Booking assigns a user to a room.
type Booking struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	RoomID    int       `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingWithRoom is the external view of a user's booking.
type BookingWithRoom struct {
	ID   int  `json:"id"`
	Room Room `json:"Room"`
}

// BookingIDResponse is returned by booking writes.
type BookingIDResponse struct {
	ID int `json:"id"`
}

// BookingRequest is the payload for creating or moving a booking.
type BookingRequest struct {
	RoomID int `json:"roomId" validate:"required,min=1"`
}

// CardData is the card used to settle a ticket. Only issuer and last digits are stored.
type CardData struct {
	Issuer         string `json:"issuer" validate:"required"`
	Number         string `json:"number" validate:"required,min=4"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expirationDate"`
	CVV            string `json:"cvv"`
}

// PaymentRequest is the payload for paying a ticket.
type PaymentRequest struct {
	TicketID int       `json:"ticketId" validate:"required,min=1"`
	CardData *CardData `json:"cardData" validate:"required"`
}

// TicketRequest is the payload for reserving a ticket.
type TicketRequest struct {
	TicketTypeID int `json:"ticketTypeId" validate:"required,min=1"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BookingResult summarises the outcome of a single booking attempt.
// Used in the concurrent test harness.
type BookingResult struct {
	UserID  int
	Success bool
	Error   error
}

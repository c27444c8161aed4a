package service

import (
	"context"
	"errors"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
)

var errStore = errors.New("store unavailable")

type fakeTx struct {
	calls int
}

func (f *fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// fakeDB is a single in-memory store behind every repository interface.
type fakeDB struct {
	enrollments map[int]model.Enrollment // by user id
	ticketTypes map[int]model.TicketType
	tickets     map[int]model.Ticket
	payments    map[int]model.Payment // by ticket id
	hotels      []model.Hotel
	rooms       map[int]model.Room
	bookings    map[int]model.Booking
	nextID      int
	failWith    error
	paid        []int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		enrollments: map[int]model.Enrollment{},
		ticketTypes: map[int]model.TicketType{},
		tickets:     map[int]model.Ticket{},
		payments:    map[int]model.Payment{},
		rooms:       map[int]model.Room{},
		bookings:    map[int]model.Booking{},
		nextID:      100,
	}
}

func (f *fakeDB) id() int {
	f.nextID++
	return f.nextID
}

func (f *fakeDB) addEnrollment(userID int) int {
	id := f.id()
	f.enrollments[userID] = model.Enrollment{ID: id, UserID: userID}
	return id
}

func (f *fakeDB) addTicketType(price int, isRemote, includesHotel bool) int {
	id := f.id()
	f.ticketTypes[id] = model.TicketType{ID: id, Price: price, IsRemote: isRemote, IncludesHotel: includesHotel}
	return id
}

func (f *fakeDB) addTicket(enrollmentID, typeID int, status model.TicketStatus) int {
	id := f.id()
	f.tickets[id] = model.Ticket{ID: id, EnrollmentID: enrollmentID, TicketTypeID: typeID, Status: status}
	return id
}

// addEligibleUser gives userID an enrollment and a PAID in-person hotel ticket.
func (f *fakeDB) addEligibleUser(userID int) {
	enrollmentID := f.addEnrollment(userID)
	f.addTicket(enrollmentID, f.addTicketType(600, false, true), model.TicketPaid)
}

func (f *fakeDB) addRoom(hotelID, capacity int) int {
	id := f.id()
	f.rooms[id] = model.Room{ID: id, Name: "room", Capacity: capacity, HotelID: hotelID}
	return id
}

func (f *fakeDB) FindByUserID(_ context.Context, userID int) (*model.Enrollment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	e, ok := f.enrollments[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (f *fakeDB) withType(t model.Ticket) *model.Ticket {
	if tt, ok := f.ticketTypes[t.TicketTypeID]; ok {
		t.TicketType = &tt
	}
	return &t
}

// tickets

type fakeTickets struct{ *fakeDB }

func (f fakeTickets) FindByEnrollmentID(_ context.Context, enrollmentID int) (*model.Ticket, error) {
	var latest *model.Ticket
	for _, t := range f.tickets {
		if t.EnrollmentID == enrollmentID && (latest == nil || t.ID > latest.ID) {
			latest = f.withType(t)
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return latest, nil
}

func (f fakeTickets) ListTypes(context.Context) ([]model.TicketType, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []model.TicketType{}
	for _, tt := range f.ticketTypes {
		out = append(out, tt)
	}
	return out, nil
}

func (f fakeTickets) FindTypeByID(_ context.Context, id int) (*model.TicketType, error) {
	tt, ok := f.ticketTypes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &tt, nil
}

func (f fakeTickets) FindByID(_ context.Context, id int) (*model.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return f.withType(t), nil
}

func (f fakeTickets) Create(_ context.Context, ticketTypeID, enrollmentID int) (*model.Ticket, error) {
	id := f.addTicket(enrollmentID, ticketTypeID, model.TicketReserved)
	t := f.tickets[id]
	return &t, nil
}

func (f fakeTickets) MarkPaid(_ context.Context, id int) error {
	t, ok := f.tickets[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Status = model.TicketPaid
	f.tickets[id] = t
	f.paid = append(f.paid, id)
	return nil
}

// payments

type fakePayments struct{ *fakeDB }

func (f fakePayments) FindByTicketID(_ context.Context, ticketID int) (*model.Payment, error) {
	p, ok := f.payments[ticketID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f fakePayments) Create(_ context.Context, p model.Payment) (*model.Payment, error) {
	if _, ok := f.payments[p.TicketID]; ok {
		return nil, repository.ErrDuplicate
	}
	p.ID = f.id()
	f.payments[p.TicketID] = p
	return &p, nil
}

// hotels

type fakeHotels struct{ *fakeDB }

func (f fakeHotels) List(context.Context) ([]model.Hotel, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]model.Hotel{}, f.hotels...), nil
}

func (f fakeHotels) FindByID(_ context.Context, id int) (*model.Hotel, error) {
	for _, h := range f.hotels {
		if h.ID == id {
			return &h, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f fakeHotels) ListRooms(_ context.Context, hotelID int) ([]model.Room, error) {
	out := []model.Room{}
	for id := 0; id <= f.nextID; id++ {
		if rm, ok := f.rooms[id]; ok && rm.HotelID == hotelID {
			out = append(out, rm)
		}
	}
	return out, nil
}

// bookings

type fakeBookings struct{ *fakeDB }

func (f fakeBookings) LockRoom(_ context.Context, roomID int) (*model.Room, error) {
	rm, ok := f.rooms[roomID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rm, nil
}

func (f fakeBookings) CountByRoomID(_ context.Context, roomID int) (int, error) {
	n := 0
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n, nil
}

func (f fakeBookings) Create(_ context.Context, userID, roomID int) (*model.Booking, error) {
	b := model.Booking{ID: f.id(), UserID: userID, RoomID: roomID}
	f.bookings[b.ID] = b
	return &b, nil
}

func (f fakeBookings) UpdateRoom(_ context.Context, bookingID, roomID int) (*model.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b.RoomID = roomID
	f.bookings[bookingID] = b
	return &b, nil
}

func (f fakeBookings) FindByID(_ context.Context, id int) (*model.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (f fakeBookings) FindByUserID(_ context.Context, userID int) (*model.BookingWithRoom, error) {
	var latest *model.Booking
	for _, b := range f.bookings {
		if b.UserID == userID && (latest == nil || b.ID > latest.ID) {
			b := b
			latest = &b
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return &model.BookingWithRoom{ID: latest.ID, Room: f.rooms[latest.RoomID]}, nil
}

func newEligibility(db *fakeDB) *EligibilityChecker {
	return NewEligibilityChecker(db, fakeTickets{db})
}

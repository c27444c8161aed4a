package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
)

// BookingRepository handles persistence for room bookings.
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// LockRoom loads a room and, inside a transaction, holds a row lock on it until commit.
// Concurrent bookings for the same room queue on this lock, so the count that
// follows cannot go stale before the insert.
func (r *BookingRepository) LockRoom(ctx context.Context, roomID int) (*model.Room, error) {
	var rm model.Room
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, name, capacity, hotel_id, created_at, updated_at
		 FROM rooms WHERE id = $1
		 FOR UPDATE`,
		roomID,
	).Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lock room row: %w", err)
	}
	return &rm, nil
}

// CountByRoomID returns how many bookings reference the room.
func (r *BookingRepository) CountByRoomID(ctx context.Context, roomID int) (int, error) {
	var n int
	if err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE room_id = $1`,
		roomID,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

// Create inserts a booking and returns it.
func (r *BookingRepository) Create(ctx context.Context, userID, roomID int) (*model.Booking, error) {
	b := model.Booking{UserID: userID, RoomID: roomID}
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO bookings (user_id, room_id) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		userID, roomID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return &b, nil
}

// UpdateRoom moves a booking to another room.
func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int) (*model.Booking, error) {
	var b model.Booking
	err := conn(ctx, r.db).QueryRow(ctx,
		`UPDATE bookings SET room_id = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, user_id, room_id, created_at, updated_at`,
		bookingID, roomID,
	).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return &b, nil
}

// FindByID returns a booking or ErrNotFound.
func (r *BookingRepository) FindByID(ctx context.Context, id int) (*model.Booking, error) {
	var b model.Booking
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

// FindByUserID returns the user's latest booking with its room, or ErrNotFound.
func (r *BookingRepository) FindByUserID(ctx context.Context, userID int) (*model.BookingWithRoom, error) {
	var b model.BookingWithRoom
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT b.id, rm.id, rm.name, rm.capacity, rm.hotel_id, rm.created_at, rm.updated_at
		 FROM bookings b JOIN rooms rm ON rm.id = b.room_id
		 WHERE b.user_id = $1
		 ORDER BY b.id DESC
		 LIMIT 1`,
		userID,
	).Scan(&b.ID, &b.Room.ID, &b.Room.Name, &b.Room.Capacity, &b.Room.HotelID, &b.Room.CreatedAt, &b.Room.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking by user: %w", err)
	}
	return &b, nil
}

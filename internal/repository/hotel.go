package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
)

// HotelRepository reads hotels and their rooms.
type HotelRepository struct {
	db *pgxpool.Pool
}

// NewHotelRepository constructs a HotelRepository.
func NewHotelRepository(db *pgxpool.Pool) *HotelRepository {
	return &HotelRepository{db: db}
}

// List returns all hotels ordered by id.
func (r *HotelRepository) List(ctx context.Context) ([]model.Hotel, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id, name, image, created_at, updated_at FROM hotels ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	hotels := []model.Hotel{}
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

// FindByID returns a single hotel or ErrNotFound.
func (r *HotelRepository) FindByID(ctx context.Context, id int) (*model.Hotel, error) {
	var h model.Hotel
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, name, image, created_at, updated_at FROM hotels WHERE id = $1`,
		id,
	).Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	return &h, nil
}

// ListRooms returns the rooms of a hotel ordered by id.
func (r *HotelRepository) ListRooms(ctx context.Context, hotelID int) ([]model.Room, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id, name, capacity, hotel_id, created_at, updated_at
		 FROM rooms WHERE hotel_id = $1 ORDER BY id`,
		hotelID,
	)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	rooms := []model.Room{}
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

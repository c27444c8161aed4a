package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
)

// HotelSource is the uncached hotel catalog.
type HotelSource interface {
	List(ctx context.Context) ([]model.Hotel, error)
	FindByID(ctx context.Context, id int) (*model.Hotel, error)
	ListRooms(ctx context.Context, hotelID int) ([]model.Room, error)
}

// Hotels serves catalog reads from Redis and falls back to the source on a miss.
// Redis failures are never surfaced; the source result is returned instead.
type Hotels struct {
	source HotelSource
	client *redis.Client
	ttl    time.Duration
}

// NewHotels wraps source. A nil client turns every call into a pass-through.
func NewHotels(source HotelSource, client *redis.Client, ttl time.Duration) *Hotels {
	return &Hotels{source: source, client: client, ttl: ttl}
}

func (h *Hotels) List(ctx context.Context) ([]model.Hotel, error) {
	var hotels []model.Hotel
	if h.get(ctx, "hotels:all", &hotels) {
		return hotels, nil
	}
	hotels, err := h.source.List(ctx)
	if err != nil {
		return nil, err
	}
	h.set(ctx, "hotels:all", hotels)
	return hotels, nil
}

func (h *Hotels) FindByID(ctx context.Context, id int) (*model.Hotel, error) {
	key := fmt.Sprintf("hotels:%d", id)
	var hotel model.Hotel
	if h.get(ctx, key, &hotel) {
		return &hotel, nil
	}
	found, err := h.source.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h.set(ctx, key, found)
	return found, nil
}

func (h *Hotels) ListRooms(ctx context.Context, hotelID int) ([]model.Room, error) {
	key := fmt.Sprintf("hotels:%d:rooms", hotelID)
	var rooms []model.Room
	if h.get(ctx, key, &rooms) {
		return rooms, nil
	}
	rooms, err := h.source.ListRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	h.set(ctx, key, rooms)
	return rooms, nil
}

func (h *Hotels) get(ctx context.Context, key string, dst any) bool {
	if h.client == nil {
		return false
	}
	raw, err := h.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (h *Hotels) set(ctx context.Context, key string, v any) {
	if h.client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = h.client.Set(ctx, key, raw, h.ttl).Err()
}

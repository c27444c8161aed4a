package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
)

// HotelService lists hotels and rooms to users whose ticket includes lodging.
type HotelService struct {
	eligibility *EligibilityChecker
	hotels      HotelCatalog
}

// NewHotelService constructs a HotelService.
func NewHotelService(eligibility *EligibilityChecker, hotels HotelCatalog) *HotelService {
	return &HotelService{eligibility: eligibility, hotels: hotels}
}

// GetHotels returns every hotel when the user may book one.
func (s *HotelService) GetHotels(ctx context.Context, userID int) ([]model.Hotel, error) {
	if err := s.authorize(ctx, userID); err != nil {
		return nil, err
	}
	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

// GetHotelByID returns a hotel or ErrNotFound.
func (s *HotelService) GetHotelByID(ctx context.Context, hotelID int) (*model.Hotel, error) {
	h, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	return h, nil
}

// GetRoomsByHotelID returns the hotel's rooms when the user may book one.
func (s *HotelService) GetRoomsByHotelID(ctx context.Context, userID, hotelID int) ([]model.Room, error) {
	if err := s.authorize(ctx, userID); err != nil {
		return nil, err
	}
	rooms, err := s.hotels.ListRooms(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *HotelService) authorize(ctx context.Context, userID int) error {
	eligibility, err := s.eligibility.Check(ctx, userID)
	if err != nil {
		return err
	}
	switch eligibility {
	case Eligible:
		return nil
	case EnrollmentNotFound, TicketNotFound:
		return ErrNotFound
	case InvalidTicket:
		return ErrCannotListHotels
	default:
		return fmt.Errorf("unexpected eligibility %s", eligibility)
	}
}

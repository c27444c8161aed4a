package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/service"
)

// HotelService is what HotelHandler needs from the hotel catalog.
type HotelService interface {
	GetHotels(ctx context.Context, userID int) ([]model.Hotel, error)
	GetHotelByID(ctx context.Context, hotelID int) (*model.Hotel, error)
	GetRoomsByHotelID(ctx context.Context, userID, hotelID int) ([]model.Room, error)
}

// HotelHandler serves /hotels.
type HotelHandler struct {
	svc HotelService
	log logrus.FieldLogger
}

// NewHotelHandler constructs a HotelHandler.
func NewHotelHandler(svc HotelService, log logrus.FieldLogger) *HotelHandler {
	return &HotelHandler{svc: svc, log: log}
}

// ListHotels handles GET /hotels
func (h *HotelHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	hotels, err := h.svc.GetHotels(r.Context(), userID)
	if err != nil {
		h.writeHotelError(w, r, err)
		return
	}
	if hotels == nil {
		hotels = []model.Hotel{}
	}
	writeJSON(w, http.StatusOK, hotels)
}

// ListRooms handles GET /hotels/{hotelId}
// The hotelId query parameter, when given, takes precedence over the path.
func (h *HotelHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	raw := chi.URLParam(r, "hotelId")
	if q := r.URL.Query().Get("hotelId"); q != "" {
		raw = q
	}
	hotelID, ok := positiveID(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "hotelId must be a positive integer")
		return
	}

	if _, err := h.svc.GetHotelByID(r.Context(), hotelID); err != nil {
		h.writeHotelError(w, r, err)
		return
	}

	rooms, err := h.svc.GetRoomsByHotelID(r.Context(), userID, hotelID)
	if err != nil {
		h.writeHotelError(w, r, err)
		return
	}
	if rooms == nil {
		rooms = []model.Room{}
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *HotelHandler) writeHotelError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrCannotListHotels):
		writeError(w, http.StatusPaymentRequired, "ticket does not include hotel")
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		internalFault(h.log, w, r, http.StatusNotFound, err)
	}
}

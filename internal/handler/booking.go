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

// BookingService is what BookingHandler needs from the booking flow.
type BookingService interface {
	GetByUserID(ctx context.Context, userID int) (*model.BookingWithRoom, error)
	Create(ctx context.Context, userID, roomID int) (int, error)
	Update(ctx context.Context, userID, bookingID, roomID int) (int, error)
}

// BookingHandler serves /booking.
type BookingHandler struct {
	svc BookingService
	log logrus.FieldLogger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc BookingService, log logrus.FieldLogger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

// GetBooking handles GET /booking
// Returns the caller's booking with its room.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	b, err := h.svc.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		internalFault(h.log, w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// CreateBooking handles POST /booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req model.BookingRequest
	if !bindJSON(w, r, &req) {
		return
	}

	id, err := h.svc.Create(r.Context(), userID, req.RoomID)
	if err != nil {
		h.writeBookingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.BookingIDResponse{ID: id})
}

// UpdateBooking handles PUT /booking/{bookingId}
// Moves the caller's booking to another room.
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	bookingID, ok := positiveID(chi.URLParam(r, "bookingId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "bookingId must be a positive integer")
		return
	}
	var req model.BookingRequest
	if !bindJSON(w, r, &req) {
		return
	}

	id, err := h.svc.Update(r.Context(), userID, bookingID, req.RoomID)
	if err != nil {
		h.writeBookingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.BookingIDResponse{ID: id})
}

func (h *BookingHandler) writeBookingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "enrollment or room not found")
	case errors.Is(err, service.ErrInvalidTicket):
		writeError(w, http.StatusForbidden, "ticket does not allow hotel booking")
	case errors.Is(err, service.ErrRoomIsFull):
		writeError(w, http.StatusForbidden, "room is full")
	case errors.Is(err, service.ErrBookingNotOwned):
		writeError(w, http.StatusForbidden, "booking does not belong to user")
	default:
		internalFault(h.log, w, r, http.StatusNotFound, err)
	}
}

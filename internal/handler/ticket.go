package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/service"
)

// TicketService is what TicketHandler needs from the ticket flow.
type TicketService interface {
	ListTypes(ctx context.Context) ([]model.TicketType, error)
	GetUserTicket(ctx context.Context, userID int) (*model.Ticket, error)
	CreateTicket(ctx context.Context, userID, ticketTypeID int) (*model.Ticket, error)
}

// TicketHandler serves /tickets.
type TicketHandler struct {
	svc TicketService
	log logrus.FieldLogger
}

// NewTicketHandler constructs a TicketHandler.
func NewTicketHandler(svc TicketService, log logrus.FieldLogger) *TicketHandler {
	return &TicketHandler{svc: svc, log: log}
}

// ListTypes handles GET /tickets/types
// A store failure answers 204 with no body.
func (h *TicketHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListTypes(r.Context())
	if err != nil {
		internalFault(h.log, w, r, http.StatusNoContent, err)
		return
	}
	if types == nil {
		types = []model.TicketType{}
	}
	writeJSON(w, http.StatusOK, types)
}

// GetTicket handles GET /tickets
func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	t, err := h.svc.GetUserTicket(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "ticket not found")
			return
		}
		internalFault(h.log, w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CreateTicket handles POST /tickets
// Reserves a ticket of the given type for the caller's enrollment.
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req model.TicketRequest
	if !bindJSON(w, r, &req) {
		return
	}

	t, err := h.svc.CreateTicket(r.Context(), userID, req.TicketTypeID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "enrollment or ticket type not found")
			return
		}
		internalFault(h.log, w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

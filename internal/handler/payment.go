package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/service"
)

// PaymentService is what PaymentHandler needs from the payment flow.
type PaymentService interface {
	GetPayment(ctx context.Context, userID, ticketID int) (*model.Payment, error)
	ProcessPayment(ctx context.Context, userID int, req model.PaymentRequest) (*model.Payment, error)
}

// PaymentHandler serves /payments.
type PaymentHandler struct {
	svc PaymentService
	log logrus.FieldLogger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc PaymentService, log logrus.FieldLogger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: log}
}

// GetPayment handles GET /payments?ticketId=
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	ticketID, ok := positiveID(r.URL.Query().Get("ticketId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "ticketId must be a positive integer")
		return
	}

	p, err := h.svc.GetPayment(r.Context(), userID, ticketID)
	if err != nil {
		h.writePaymentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ProcessPayment handles POST /payments
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req model.PaymentRequest
	if !bindJSON(w, r, &req) {
		return
	}

	p, err := h.svc.ProcessPayment(r.Context(), userID, req)
	if err != nil {
		h.writePaymentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) writePaymentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid payment")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "ticket or payment not found")
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "ticket does not belong to user")
	default:
		internalFault(h.log, w, r, http.StatusNotFound, err)
	}
}

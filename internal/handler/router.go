package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// RouterConfig collects everything the HTTP surface is built from.
type RouterConfig struct {
	Log         logrus.FieldLogger
	CORSOrigins []string
	Auth        TokenAuthenticator
	Booking     *BookingHandler
	Hotel       *HotelHandler
	Payment     *PaymentHandler
	Ticket      *TicketHandler
}

// NewRouter mounts every route. Only /health is reachable without a bearer token.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(cfg.Log))
	r.Use(CORS(cfg.CORSOrigins))

	r.Get("/health", HealthCheck)

	r.Group(func(r chi.Router) {
		r.Use(Authenticate(cfg.Auth, cfg.Log))

		r.Route("/booking", func(r chi.Router) {
			r.Get("/", cfg.Booking.GetBooking)
			r.Post("/", cfg.Booking.CreateBooking)
			r.Put("/{bookingId}", cfg.Booking.UpdateBooking)
		})

		r.Route("/hotels", func(r chi.Router) {
			r.Get("/", cfg.Hotel.ListHotels)
			r.Get("/{hotelId}", cfg.Hotel.ListRooms)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", cfg.Payment.GetPayment)
			r.Post("/", cfg.Payment.ProcessPayment)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", cfg.Ticket.GetTicket)
			r.Post("/", cfg.Ticket.CreateTicket)
			r.Get("/types", cfg.Ticket.ListTypes)
		})
	})

	return r
}

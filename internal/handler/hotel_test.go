package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/model"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/service"
)

func TestListHotels(t *testing.T) {
	tests := []struct {
		name           string
		hotels         []model.Hotel
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{name: "success", hotels: []model.Hotel{{ID: 1, Name: "Grand"}}, expectedStatus: http.StatusOK, expectedBody: `"name":"Grand"`},
		{name: "empty list", expectedStatus: http.StatusOK, expectedBody: `[]`},
		{name: "reserved ticket", err: service.ErrCannotListHotels, expectedStatus: http.StatusPaymentRequired},
		{name: "no enrollment", err: service.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "internal error", err: errBoom, expectedStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubHotels{hotels: tt.hotels, listErr: tt.err}
			rec := do(t, newTestRouter(stubs{hotels: svc}), http.MethodGet, "/hotels", "user-1", "")
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedBody != "" && !strings.Contains(rec.Body.String(), tt.expectedBody) {
				t.Fatalf("expected %q in %q", tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestListRooms(t *testing.T) {
	rooms := []model.Room{{ID: 1, Name: "101", Capacity: 1, HotelID: 2}, {ID: 2, Name: "102", Capacity: 3, HotelID: 2}}

	tests := []struct {
		name           string
		target         string
		hotelErr       error
		listErr        error
		expectedStatus int
		expectedHotel  int
	}{
		{name: "path id", target: "/hotels/2", expectedStatus: http.StatusOK, expectedHotel: 2},
		{name: "query id wins", target: "/hotels/9?hotelId=2", expectedStatus: http.StatusOK, expectedHotel: 2},
		{name: "non-numeric", target: "/hotels/abc", expectedStatus: http.StatusBadRequest},
		{name: "non-numeric query", target: "/hotels/2?hotelId=x", expectedStatus: http.StatusBadRequest},
		{name: "zero", target: "/hotels/0", expectedStatus: http.StatusBadRequest},
		{name: "hotel absent", target: "/hotels/2", hotelErr: service.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "ineligible", target: "/hotels/2", listErr: service.ErrCannotListHotels, expectedStatus: http.StatusPaymentRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubHotels{rooms: rooms, hotelErr: tt.hotelErr, listErr: tt.listErr}
			rec := do(t, newTestRouter(stubs{hotels: svc}), http.MethodGet, tt.target, "user-1", "")
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedHotel != 0 && svc.gotHotel != tt.expectedHotel {
				t.Fatalf("expected hotel %d, got %d", tt.expectedHotel, svc.gotHotel)
			}
		})
	}
}

func TestListRooms_RepeatedReadsAreIdentical(t *testing.T) {
	svc := &stubHotels{rooms: []model.Room{{ID: 1, Name: "101", Capacity: 2, HotelID: 2}}}
	router := newTestRouter(stubs{hotels: svc})

	first := do(t, router, http.MethodGet, "/hotels/2", "user-1", "")
	second := do(t, router, http.MethodGet, "/hotels/2", "user-1", "")
	if first.Code != http.StatusOK || first.Body.String() != second.Body.String() {
		t.Fatalf("expected identical 200 bodies, got %q and %q", first.Body.String(), second.Body.String())
	}
}

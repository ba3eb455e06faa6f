package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parksmart/models"
	"parksmart/services/parking"

	"github.com/gin-gonic/gin"
)

// fakeParkingService returns canned results per operation.
type fakeParkingService struct {
	bookErr   error
	finishErr error
	cancelErr error
	spot      *models.ParkingSpot
	booking   *models.Booking
}

func (f *fakeParkingService) ListNearby(context.Context, string, float64, float64, float64) ([]models.ParkingSpot, error) {
	if f.spot == nil {
		return nil, nil
	}
	return []models.ParkingSpot{*f.spot}, nil
}

func (f *fakeParkingService) GetSpot(context.Context, string) (*models.ParkingSpot, error) {
	return f.spot, nil
}

func (f *fakeParkingService) AddSpot(_ context.Context, spot *models.ParkingSpot) (string, error) {
	return "new-id", nil
}

func (f *fakeParkingService) NearestAvailable(context.Context, string) (*models.ParkingSpot, error) {
	return f.spot, nil
}

func (f *fakeParkingService) UserBookings(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeParkingService) ActiveBooking(context.Context, string) (*models.Booking, error) {
	return f.booking, nil
}

func (f *fakeParkingService) Book(context.Context, string, string) (*models.Booking, error) {
	return f.booking, f.bookErr
}

func (f *fakeParkingService) Finish(context.Context, string) (*models.Booking, error) {
	return f.booking, f.finishErr
}

func (f *fakeParkingService) Cancel(context.Context, string) (*models.Booking, error) {
	return f.booking, f.cancelErr
}

func newTestRouter(svc parking.ParkingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewParkingHandler(svc, 5000)
	r.GET("/api/spots/nearby", h.ListNearbySpots)
	r.GET("/api/spots/id/:id", h.GetSpot)
	r.POST("/api/bookings", h.CreateBooking)
	r.POST("/api/bookings/:id/finish", h.FinishBooking)
	r.POST("/api/bookings/:id/cancel", h.CancelBooking)
	return r
}

func TestCreateBookingMapsUnavailableToConflict(t *testing.T) {
	svc := &fakeParkingService{bookErr: parking.SpotUnavailableError{SpotID: "s1"}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"userId":"u1","spotId":"s1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	router := newTestRouter(&fakeParkingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"userId":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestFinishBookingMapsNotFound(t *testing.T) {
	svc := &fakeParkingService{finishErr: parking.BookingNotFoundError{BookingID: "b1"}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b1/finish", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestFinishBookingMapsInvalidStateToConflict(t *testing.T) {
	svc := &fakeParkingService{finishErr: parking.InvalidStateError{BookingID: "b1", Status: "completed"}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b1/finish", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestListNearbyRequiresCoordinates(t *testing.T) {
	router := newTestRouter(&fakeParkingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/spots/nearby?lat=abc&lng=13.4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetSpotNotFound(t *testing.T) {
	router := newTestRouter(&fakeParkingService{spot: nil})

	req := httptest.NewRequest(http.MethodGet, "/api/spots/id/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

package parking

import (
	"context"

	bookingRepo "parksmart/database/repository/booking"
	spotRepo "parksmart/database/repository/spot"
	"parksmart/models"

	"go.uber.org/zap"
)

// ParkingService owns the spot search and booking lifecycle.
type ParkingService interface {
	// ListNearby resolves spots within radiusM meters of the caller, annotated
	// with distance and estimated travel time. When userID is non-empty the
	// result set is mirrored into the session store for the UI layer.
	ListNearby(ctx context.Context, userID string, lat, lon, radiusM float64) ([]models.ParkingSpot, error)
	// GetSpot retrieves a single spot, or nil if unknown.
	GetSpot(ctx context.Context, id string) (*models.ParkingSpot, error)
	// AddSpot registers a new spot and returns its ID. Coordinates are
	// required; the geohash is derived here, never supplied by the caller.
	AddSpot(ctx context.Context, spot *models.ParkingSpot) (string, error)
	// NearestAvailable picks the closest available spot from the caller's
	// cached nearby set.
	NearestAvailable(ctx context.Context, userID string) (*models.ParkingSpot, error)
	// UserBookings returns a user's booking history with spot snapshots,
	// most recent first.
	UserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	// ActiveBooking returns the user's cached active booking, or nil.
	ActiveBooking(ctx context.Context, userID string) (*models.Booking, error)
	// Book atomically reserves the spot and opens an active booking.
	Book(ctx context.Context, userID, spotID string) (*models.Booking, error)
	// Finish completes an active booking, billing the elapsed time, and
	// releases the spot.
	Finish(ctx context.Context, bookingID string) (*models.Booking, error)
	// Cancel marks a booking cancelled without billing and releases the spot.
	Cancel(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultParkingService implements ParkingService.
type DefaultParkingService struct {
	Spots    spotRepo.SpotRepository
	Bookings bookingRepo.BookingRepository
	Sessions *SessionStore
	Logger   *zap.Logger
}

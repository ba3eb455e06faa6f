package bookingRepo

import (
	"context"
	"time"

	"parksmart/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Insert stores a new booking document.
	Insert(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its ID, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByUser returns a user's bookings, most recent start time first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// Complete transitions an active booking to completed and fixes its cost.
	// The update is conditional on status == "active"; it reports whether this
	// call performed the transition.
	Complete(ctx context.Context, id string, endTime time.Time, totalCost float64, paymentMethod string) (bool, error)
	// Cancel marks a booking cancelled and stamps its end time. Deliberately
	// unconditional on current status.
	Cancel(ctx context.Context, id string, endTime time.Time) error
}

package spotRepo

import (
	"context"

	"parksmart/geo"
	"parksmart/models"
)

// SpotRepository defines methods for parking spot data access. All writes are
// single-document atomic operations; there are no multi-document transactions.
type SpotRepository interface {
	// Insert stores a new spot document.
	Insert(ctx context.Context, spot *models.ParkingSpot) error
	// GetByID retrieves a spot by its unique ID, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*models.ParkingSpot, error)
	// FindByGeohashRange returns spots whose geohash falls inside the inclusive range.
	FindByGeohashRange(ctx context.Context, bounds geo.Bounds) ([]models.ParkingSpot, error)
	// ClaimIfAvailable atomically flips available true -> false. It reports
	// whether this call won the claim; false covers both a taken and a
	// nonexistent spot.
	ClaimIfAvailable(ctx context.Context, id string) (bool, error)
	// Release flips available back to true.
	Release(ctx context.Context, id string) error
}

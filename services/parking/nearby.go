package parking

import (
	"context"
	"fmt"
	"sort"

	"parksmart/geo"
	"parksmart/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// nearbyRadiusKm bounds the spot set mirrored for the UI layer.
const nearbyRadiusKm = 10.0

// ListNearby resolves spots within radiusM meters of (lat, lon). The geohash
// ranges over-approximate the circle, so every candidate is re-checked against
// the true distance before being returned.
func (svc *DefaultParkingService) ListNearby(ctx context.Context, userID string, lat, lon, radiusM float64) ([]models.ParkingSpot, error) {
	bounds := geo.QueryBounds(lat, lon, radiusM)
	radiusKm := radiusM / 1000

	seen := make(map[string]struct{})
	var matching []models.ParkingSpot
	for _, b := range bounds {
		spots, err := svc.Spots.FindByGeohashRange(ctx, b)
		if err != nil {
			return nil, RepositoryError{Op: "geohash range query", Err: err}
		}
		for _, spot := range spots {
			if _, dup := seen[spot.ID]; dup {
				continue
			}
			seen[spot.ID] = struct{}{}
			if spot.Coordinates == nil {
				continue
			}

			d := geo.Distance(spot.Coordinates.Latitude, spot.Coordinates.Longitude, lat, lon)
			if d > radiusKm {
				continue
			}
			annotated := spot
			annotated.Distance = &d
			minutes := geo.EstimatedTravelTime(geo.DrivingDistance(d), geo.DefaultCitySpeedKmh)
			annotated.EstimatedTime = &minutes
			matching = append(matching, annotated)
		}
	}

	if svc.Sessions != nil && userID != "" {
		nearby := make([]models.ParkingSpot, 0, len(matching))
		for _, s := range matching {
			if *s.Distance < nearbyRadiusKm {
				nearby = append(nearby, s)
			}
		}
		if err := svc.Sessions.SaveNearbySpots(ctx, userID, nearby); err != nil {
			svc.logger().Warn("failed to cache nearby spots",
				zap.String("userId", userID), zap.Error(err))
		}
	}

	return matching, nil
}

// GetSpot retrieves a spot by ID, or nil if it does not exist.
func (svc *DefaultParkingService) GetSpot(ctx context.Context, id string) (*models.ParkingSpot, error) {
	spot, err := svc.Spots.GetByID(ctx, id)
	if err != nil {
		return nil, RepositoryError{Op: "fetch spot", Err: err}
	}
	return spot, nil
}

// AddSpot registers a new spot. The geohash is derived from the coordinates
// here so the persisted key always matches the persisted location.
func (svc *DefaultParkingService) AddSpot(ctx context.Context, spot *models.ParkingSpot) (string, error) {
	if spot.Coordinates == nil {
		return "", fmt.Errorf("coordinates are required to add a parking spot")
	}
	if spot.Price < 0 {
		return "", fmt.Errorf("price must not be negative")
	}

	spot.ID = uuid.New().String()
	spot.Geohash = geo.Encode(spot.Coordinates.Latitude, spot.Coordinates.Longitude)
	if spot.PriceUnit == "" {
		spot.PriceUnit = "hour"
	}
	if spot.Type == "" {
		spot.Type = "standard"
	}
	// Derived fields are per-query only.
	spot.Distance = nil
	spot.EstimatedTime = nil

	if err := svc.Spots.Insert(ctx, spot); err != nil {
		return "", RepositoryError{Op: "insert spot", Err: err}
	}
	return spot.ID, nil
}

// NearestAvailable picks the closest available spot from the user's cached
// nearby set.
func (svc *DefaultParkingService) NearestAvailable(ctx context.Context, userID string) (*models.ParkingSpot, error) {
	if svc.Sessions == nil {
		return nil, nil
	}
	spots, err := svc.Sessions.NearbySpots(ctx, userID)
	if err != nil {
		return nil, RepositoryError{Op: "fetch cached nearby spots", Err: err}
	}
	return FindNearestAvailable(spots), nil
}

// FindNearestAvailable filters for available spots and returns the one with
// the smallest distance, or nil if none qualify. Spots without a distance sort
// last; ties keep their input order.
func FindNearestAvailable(spots []models.ParkingSpot) *models.ParkingSpot {
	available := make([]models.ParkingSpot, 0, len(spots))
	for _, s := range spots {
		if s.Available {
			available = append(available, s)
		}
	}
	if len(available) == 0 {
		return nil
	}
	sort.SliceStable(available, func(i, j int) bool {
		di, dj := available[i].Distance, available[j].Distance
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
	return &available[0]
}

// UserBookings returns a user's booking history with spot snapshots attached,
// most recent start time first.
func (svc *DefaultParkingService) UserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := svc.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, RepositoryError{Op: "list bookings", Err: err}
	}
	for i := range bookings {
		spot, err := svc.Spots.GetByID(ctx, bookings[i].SpotID)
		if err != nil {
			svc.logger().Warn("failed to load spot snapshot for booking",
				zap.String("bookingId", bookings[i].ID), zap.Error(err))
			continue
		}
		bookings[i].Spot = spot
	}
	return bookings, nil
}

// ActiveBooking returns the user's cached active booking, or nil.
func (svc *DefaultParkingService) ActiveBooking(ctx context.Context, userID string) (*models.Booking, error) {
	if svc.Sessions == nil {
		return nil, nil
	}
	booking, err := svc.Sessions.ActiveBooking(ctx, userID)
	if err != nil {
		return nil, RepositoryError{Op: "fetch cached booking", Err: err}
	}
	return booking, nil
}

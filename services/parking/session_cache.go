package parking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parksmart/models"

	"github.com/go-redis/redis/v8"
)

const (
	nearbySpotsPrefix   = "nearbySpots:"
	activeBookingPrefix = "activeBooking:"
)

// SessionStore mirrors a user's nearby spots and active booking in Redis for
// the UI layer. It is a cache, never the source of truth: every entry expires
// and is refreshed from the repositories through the service.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps the given Redis client with the session TTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// SaveNearbySpots caches the user's last nearby result set.
func (s *SessionStore) SaveNearbySpots(ctx context.Context, userID string, spots []models.ParkingSpot) error {
	data, err := json.Marshal(spots)
	if err != nil {
		return fmt.Errorf("failed to marshal nearby spots: %w", err)
	}
	if err := s.client.Set(ctx, nearbySpotsPrefix+userID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache nearby spots: %w", err)
	}
	return nil
}

// NearbySpots returns the cached nearby set, or nil when absent or expired.
func (s *SessionStore) NearbySpots(ctx context.Context, userID string) ([]models.ParkingSpot, error) {
	data, err := s.client.Get(ctx, nearbySpotsPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cached nearby spots: %w", err)
	}
	var spots []models.ParkingSpot
	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nearby spots: %w", err)
	}
	return spots, nil
}

// SaveActiveBooking caches the user's current active booking.
func (s *SessionStore) SaveActiveBooking(ctx context.Context, userID string, booking *models.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}
	if err := s.client.Set(ctx, activeBookingPrefix+userID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache booking: %w", err)
	}
	return nil
}

// ActiveBooking returns the cached active booking, or nil when absent.
func (s *SessionStore) ActiveBooking(ctx context.Context, userID string) (*models.Booking, error) {
	data, err := s.client.Get(ctx, activeBookingPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cached booking: %w", err)
	}
	var booking models.Booking
	if err := json.Unmarshal([]byte(data), &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}
	return &booking, nil
}

// ClearActiveBooking drops the cached booking after a terminal transition.
func (s *SessionStore) ClearActiveBooking(ctx context.Context, userID string) error {
	return s.client.Del(ctx, activeBookingPrefix+userID).Err()
}

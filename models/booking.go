package models

import "time"

// Booking status values. "active" is the only non-terminal status.
const (
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a time-bounded reservation of one spot by one user.
type Booking struct {
	ID            string     `bson:"id" json:"id"`
	UserID        string     `bson:"userId" json:"userId"`
	SpotID        string     `bson:"spotId" json:"spotId"`
	Status        string     `bson:"status" json:"status"`
	StartTime     time.Time  `bson:"startTime" json:"startTime"`
	EndTime       *time.Time `bson:"endTime,omitempty" json:"endTime,omitempty"` // Set exactly once, at the terminal transition.
	TotalCost     float64    `bson:"totalCost" json:"totalCost"`                 // Fixed at completion; zero while active or cancelled.
	PaymentMethod string     `bson:"paymentMethod" json:"paymentMethod"`         // "pending" until finish.
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`

	// Spot snapshot for display, attached per-response. Never persisted.
	Spot *ParkingSpot `bson:"-" json:"spot,omitempty"`
}

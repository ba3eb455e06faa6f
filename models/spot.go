package models

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// ParkingSpot represents a bookable parking location.
type ParkingSpot struct {
	ID          string       `bson:"id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"` // A spot without coordinates is unsearchable by proximity.
	Geohash     string       `bson:"geohash,omitempty" json:"geohash,omitempty"`         // Derived proximity key; recomputed whenever coordinates are set.
	Price       float64      `bson:"price" json:"price"`
	PriceUnit   string       `bson:"priceUnit" json:"priceUnit"` // e.g., "hour"
	Available   bool         `bson:"available" json:"available"`
	Type        string       `bson:"type,omitempty" json:"type,omitempty"` // e.g., "standard", "electric", "covered"
	Amenities   []string     `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Images      []string     `bson:"images,omitempty" json:"images,omitempty"`
	Rating      float64      `bson:"rating" json:"rating"`
	RatingCount int          `bson:"ratingCount" json:"ratingCount"`

	// Derived per-query, relative to the caller's location. Never persisted.
	Distance      *float64 `bson:"-" json:"distance,omitempty"`      // kilometers
	EstimatedTime *int     `bson:"-" json:"estimatedTime,omitempty"` // minutes
}

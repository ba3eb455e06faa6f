package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// drivingFactor approximates the detour of real roads over the straight line.
const drivingFactor = 1.4

// DefaultCitySpeedKmh is the average speed assumed for travel-time estimates.
const DefaultCitySpeedKmh = 30

// Distance returns the great-circle distance between two points in kilometers,
// rounded to 3 decimal places.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round3(earthRadiusKm * c)
}

// DrivingDistance estimates the road distance for a straight-line distance.
func DrivingDistance(straightLineKm float64) float64 {
	return round3(straightLineKm * drivingFactor)
}

// EstimatedTravelTime returns the driving time in minutes for a distance at the
// given average speed. Never less than 1 minute.
func EstimatedTravelTime(distanceKm, avgSpeedKmh float64) int {
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = DefaultCitySpeedKmh
	}
	minutes := int(math.Round(distanceKm / avgSpeedKmh * 60))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// FormatDistance renders a distance for display, switching to meters below 1 km.
func FormatDistance(km *float64) string {
	if km == nil {
		return "Unknown"
	}
	if *km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(*km*1000)))
	}
	return fmt.Sprintf("%.1f km", *km)
}

// FormatTime renders a duration in minutes for display.
func FormatTime(minutes *int) string {
	if minutes == nil {
		return "Unknown"
	}
	m := *minutes
	if m < 60 {
		return fmt.Sprintf("%d min", m)
	}
	hours := m / 60
	rem := m % 60
	if rem == 0 {
		return fmt.Sprintf("%d h", hours)
	}
	return fmt.Sprintf("%d h %d min", hours, rem)
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

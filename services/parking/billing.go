package parking

import (
	"fmt"
	"math"
	"time"
)

// ParkingCost is the billing breakdown for a parking interval.
type ParkingCost struct {
	DurationHours            float64 `json:"durationHours"`
	BillingHours             float64 `json:"billingHours"`
	TotalCost                float64 `json:"totalCost"`
	FormattedDuration        string  `json:"formattedDuration"`
	FormattedBillingDuration string  `json:"formattedBillingDuration"`
}

// ComputeParkingCost bills the interval [start, end) at hourlyRate. Billing
// time rounds up to the nearest quarter hour, so any positive duration bills
// at least 0.25 h. Precondition: end is not before start.
func ComputeParkingCost(start, end time.Time, hourlyRate float64) ParkingCost {
	durationHours := end.Sub(start).Hours()
	billingHours := math.Ceil(durationHours*4) / 4
	totalCost := math.Round(billingHours*hourlyRate*100) / 100

	hours := int(durationHours)
	minutes := int(math.Round((durationHours - float64(hours)) * 60))

	formattedDuration := fmt.Sprintf("%dm", minutes)
	if hours > 0 {
		formattedDuration = fmt.Sprintf("%dh %dm", hours, minutes)
	}
	formattedBilling := fmt.Sprintf("%.2fh", billingHours)
	if billingHours < 1 {
		formattedBilling = fmt.Sprintf("%dm", int(math.Round(billingHours*60)))
	}

	return ParkingCost{
		DurationHours:            math.Round(durationHours*100) / 100,
		BillingHours:             billingHours,
		TotalCost:                totalCost,
		FormattedDuration:        formattedDuration,
		FormattedBillingDuration: formattedBilling,
	}
}

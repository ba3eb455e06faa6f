package parking

import (
	"testing"
	"time"
)

func TestComputeParkingCostRoundsUpToQuarterHour(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(37 * time.Minute)

	cost := ComputeParkingCost(start, end, 10)

	if cost.BillingHours != 0.75 {
		t.Errorf("BillingHours = %v, want %v", cost.BillingHours, 0.75)
	}
	if cost.TotalCost != 7.50 {
		t.Errorf("TotalCost = %v, want %v", cost.TotalCost, 7.50)
	}
	if cost.DurationHours != 0.62 {
		t.Errorf("DurationHours = %v, want %v", cost.DurationHours, 0.62)
	}
}

func TestComputeParkingCostMinimumBilling(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(1 * time.Minute)

	cost := ComputeParkingCost(start, end, 20)

	if cost.BillingHours != 0.25 {
		t.Errorf("BillingHours = %v, want %v", cost.BillingHours, 0.25)
	}
	if cost.TotalCost != 5.00 {
		t.Errorf("TotalCost = %v, want %v", cost.TotalCost, 5.00)
	}
}

func TestComputeParkingCostZeroRate(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	cost := ComputeParkingCost(start, end, 0)

	if cost.TotalCost != 0 {
		t.Errorf("TotalCost = %v, want 0", cost.TotalCost)
	}
	if cost.BillingHours != 2 {
		t.Errorf("BillingHours = %v, want 2", cost.BillingHours)
	}
}

func TestComputeParkingCostExactHour(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(1 * time.Hour)

	cost := ComputeParkingCost(start, end, 12)

	// An exact hour must not round up to the next quarter.
	if cost.BillingHours != 1.0 {
		t.Errorf("BillingHours = %v, want 1.0", cost.BillingHours)
	}
	if cost.TotalCost != 12.00 {
		t.Errorf("TotalCost = %v, want 12.00", cost.TotalCost)
	}
}

func TestComputeParkingCostZeroDuration(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	cost := ComputeParkingCost(start, start, 15)

	if cost.BillingHours != 0 {
		t.Errorf("BillingHours = %v, want 0", cost.BillingHours)
	}
	if cost.TotalCost != 0 {
		t.Errorf("TotalCost = %v, want 0", cost.TotalCost)
	}
}

func TestComputeParkingCostFormatting(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	cost := ComputeParkingCost(start, start.Add(95*time.Minute), 10)
	if cost.FormattedDuration != "1h 35m" {
		t.Errorf("FormattedDuration = %q, want %q", cost.FormattedDuration, "1h 35m")
	}
	if cost.FormattedBillingDuration != "1.75h" {
		t.Errorf("FormattedBillingDuration = %q, want %q", cost.FormattedBillingDuration, "1.75h")
	}

	cost = ComputeParkingCost(start, start.Add(10*time.Minute), 10)
	if cost.FormattedDuration != "10m" {
		t.Errorf("FormattedDuration = %q, want %q", cost.FormattedDuration, "10m")
	}
	if cost.FormattedBillingDuration != "15m" {
		t.Errorf("FormattedBillingDuration = %q, want %q", cost.FormattedBillingDuration, "15m")
	}
}

package geo

import "testing"

func TestEncodeDeterministic(t *testing.T) {
	a := Encode(52.5200, 13.4050)
	b := Encode(52.5200, 13.4050)
	if a != b {
		t.Errorf("Encode not deterministic: %q vs %q", a, b)
	}
	if len(a) != encodePrecision {
		t.Errorf("len(key) = %d, want %d", len(a), encodePrecision)
	}
}

func TestEncodeNearbyPointsSharePrefix(t *testing.T) {
	a := Encode(52.5200, 13.4050)
	b := Encode(52.5201, 13.4051) // ~13 m away
	if a[:6] != b[:6] {
		t.Errorf("nearby points diverge early: %q vs %q", a, b)
	}
}

func inBounds(bounds []Bounds, key string) bool {
	for _, b := range bounds {
		if key >= b.Start && key <= b.End {
			return true
		}
	}
	return false
}

func TestQueryBoundsCoverRadius(t *testing.T) {
	centerLat, centerLon := 52.5200, 13.4050
	bounds := QueryBounds(centerLat, centerLon, 5000)
	if len(bounds) == 0 {
		t.Fatal("QueryBounds returned no ranges")
	}

	// Points inside the radius in several directions must encode into some range.
	offsets := []struct{ dLat, dLon float64 }{
		{0, 0},
		{0.040, 0},  // ~4.4 km north
		{-0.040, 0}, // ~4.4 km south
		{0, 0.065},  // ~4.4 km east
		{0, -0.065}, // ~4.4 km west
		{0.028, 0.046},
		{-0.028, -0.046},
	}
	for _, off := range offsets {
		lat, lon := centerLat+off.dLat, centerLon+off.dLon
		if d := Distance(centerLat, centerLon, lat, lon); d > 5 {
			t.Fatalf("test point (%v, %v) is outside the radius: %v km", lat, lon, d)
		}
		key := Encode(lat, lon)
		if !inBounds(bounds, key) {
			t.Errorf("point (%v, %v) with key %q not covered by any range", lat, lon, key)
		}
	}
}

func TestQueryBoundsRangesAreWellFormed(t *testing.T) {
	bounds := QueryBounds(52.5200, 13.4050, 5000)

	seen := make(map[string]bool)
	for _, b := range bounds {
		if b.Start >= b.End {
			t.Errorf("range [%q, %q] is empty", b.Start, b.End)
		}
		if seen[b.Start] {
			t.Errorf("duplicate range start %q", b.Start)
		}
		seen[b.Start] = true
	}
	// A 3x3 cell grid yields at most 9 ranges.
	if len(bounds) > 9 {
		t.Errorf("len(bounds) = %d, want <= 9", len(bounds))
	}
}

func TestQueryBoundsWiderRadiusUsesCoarserCells(t *testing.T) {
	narrow := QueryBounds(52.5200, 13.4050, 500)
	wide := QueryBounds(52.5200, 13.4050, 50000)
	if len(narrow) == 0 || len(wide) == 0 {
		t.Fatal("QueryBounds returned no ranges")
	}
	if len(wide[0].Start) >= len(narrow[0].Start) {
		t.Errorf("wide-radius prefix %q not coarser than narrow-radius prefix %q",
			wide[0].Start, narrow[0].Start)
	}
}

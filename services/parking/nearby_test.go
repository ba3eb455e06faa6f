package parking

import (
	"context"
	"testing"

	"parksmart/geo"
	"parksmart/models"
)

func spotAt(id string, lat, lon float64, available bool) *models.ParkingSpot {
	return &models.ParkingSpot{
		ID:          id,
		Name:        "Spot " + id,
		Coordinates: &models.Coordinates{Latitude: lat, Longitude: lon},
		Geohash:     geo.Encode(lat, lon),
		Price:       2,
		PriceUnit:   "hour",
		Available:   available,
	}
}

func TestListNearbyFiltersByTrueDistance(t *testing.T) {
	center := spotAt("center", 52.5200, 13.4050, true)
	near := spotAt("near", 52.5230, 13.4050, true) // ~330 m north
	far := spotAt("far", 52.6000, 13.4050, true)   // ~8.9 km north
	svc := newTestService(newFakeSpotRepo(center, near, far), newFakeBookingRepo())

	spots, err := svc.ListNearby(context.Background(), "", 52.5200, 13.4050, 5000)
	if err != nil {
		t.Fatalf("ListNearby() error = %v", err)
	}

	got := make(map[string]models.ParkingSpot)
	for _, s := range spots {
		got[s.ID] = s
	}
	if _, ok := got["center"]; !ok {
		t.Error("center spot missing from result")
	}
	if _, ok := got["near"]; !ok {
		t.Error("near spot missing from result")
	}
	if _, ok := got["far"]; ok {
		t.Error("far spot returned despite exceeding the radius")
	}
}

func TestListNearbyAnnotatesDerivedFields(t *testing.T) {
	spot := spotAt("s1", 52.5230, 13.4050, true)
	svc := newTestService(newFakeSpotRepo(spot), newFakeBookingRepo())

	spots, err := svc.ListNearby(context.Background(), "", 52.5200, 13.4050, 5000)
	if err != nil {
		t.Fatalf("ListNearby() error = %v", err)
	}
	if len(spots) != 1 {
		t.Fatalf("len(spots) = %d, want 1", len(spots))
	}

	got := spots[0]
	if got.Distance == nil {
		t.Fatal("Distance not annotated")
	}
	wantDistance := geo.Distance(52.5230, 13.4050, 52.5200, 13.4050)
	if *got.Distance != wantDistance {
		t.Errorf("Distance = %v, want %v", *got.Distance, wantDistance)
	}
	if got.EstimatedTime == nil {
		t.Fatal("EstimatedTime not annotated")
	}
	wantMinutes := geo.EstimatedTravelTime(geo.DrivingDistance(wantDistance), geo.DefaultCitySpeedKmh)
	if *got.EstimatedTime != wantMinutes {
		t.Errorf("EstimatedTime = %v, want %v", *got.EstimatedTime, wantMinutes)
	}
}

func TestListNearbySkipsSpotsWithoutCoordinates(t *testing.T) {
	noCoords := &models.ParkingSpot{
		ID:        "blind",
		Name:      "Spot blind",
		Geohash:   geo.Encode(52.5201, 13.4051),
		Available: true,
	}
	svc := newTestService(newFakeSpotRepo(noCoords), newFakeBookingRepo())

	spots, err := svc.ListNearby(context.Background(), "", 52.5200, 13.4050, 5000)
	if err != nil {
		t.Fatalf("ListNearby() error = %v", err)
	}
	if len(spots) != 0 {
		t.Errorf("len(spots) = %d, want 0", len(spots))
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestFindNearestAvailable(t *testing.T) {
	spots := []models.ParkingSpot{
		{ID: "a", Available: true, Distance: floatPtr(3)},
		{ID: "b", Available: false, Distance: floatPtr(1)},
		{ID: "c", Available: true, Distance: nil},
		{ID: "d", Available: true, Distance: floatPtr(2)},
	}

	nearest := FindNearestAvailable(spots)
	if nearest == nil {
		t.Fatal("FindNearestAvailable() = nil, want spot d")
	}
	if nearest.ID != "d" {
		t.Errorf("nearest.ID = %q, want %q", nearest.ID, "d")
	}
}

func TestFindNearestAvailableEmpty(t *testing.T) {
	if got := FindNearestAvailable(nil); got != nil {
		t.Errorf("FindNearestAvailable(nil) = %v, want nil", got)
	}

	unavailable := []models.ParkingSpot{{ID: "a", Available: false, Distance: floatPtr(1)}}
	if got := FindNearestAvailable(unavailable); got != nil {
		t.Errorf("FindNearestAvailable(unavailable) = %v, want nil", got)
	}
}

func TestFindNearestAvailableStableTieBreak(t *testing.T) {
	spots := []models.ParkingSpot{
		{ID: "first", Available: true, Distance: floatPtr(2)},
		{ID: "second", Available: true, Distance: floatPtr(2)},
	}

	nearest := FindNearestAvailable(spots)
	if nearest == nil || nearest.ID != "first" {
		t.Errorf("nearest = %+v, want the earlier input for equal distances", nearest)
	}
}

func TestAddSpotDerivesGeohashAndDefaults(t *testing.T) {
	spots := newFakeSpotRepo()
	svc := newTestService(spots, newFakeBookingRepo())

	spot := &models.ParkingSpot{
		Name:        "Central Garage",
		Coordinates: &models.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
		Price:       3,
		Available:   true,
	}
	id, err := svc.AddSpot(context.Background(), spot)
	if err != nil {
		t.Fatalf("AddSpot() error = %v", err)
	}

	stored, err := spots.GetByID(context.Background(), id)
	if err != nil || stored == nil {
		t.Fatalf("stored spot missing: %v", err)
	}
	if want := geo.Encode(48.8566, 2.3522); stored.Geohash != want {
		t.Errorf("Geohash = %q, want %q", stored.Geohash, want)
	}
	if stored.PriceUnit != "hour" {
		t.Errorf("PriceUnit = %q, want %q", stored.PriceUnit, "hour")
	}
	if stored.Type != "standard" {
		t.Errorf("Type = %q, want %q", stored.Type, "standard")
	}
	if stored.Distance != nil || stored.EstimatedTime != nil {
		t.Error("derived fields must not be persisted")
	}
}

func TestAddSpotRequiresCoordinates(t *testing.T) {
	svc := newTestService(newFakeSpotRepo(), newFakeBookingRepo())

	if _, err := svc.AddSpot(context.Background(), &models.ParkingSpot{Name: "nowhere"}); err == nil {
		t.Fatal("AddSpot() without coordinates succeeded, want error")
	}
}

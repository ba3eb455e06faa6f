package geo

import (
	"sort"

	"github.com/mmcloughlin/geohash"
)

// encodePrecision is the stored key length (~1.2m cells), fine enough that the
// key order tracks real proximity for any practical search radius.
const encodePrecision = 10

// Bounds is a contiguous, inclusive geohash key range for an ordered-store query.
type Bounds struct {
	Start string
	End   string
}

// Encode derives the sortable proximity key for a coordinate pair.
func Encode(lat, lon float64) string {
	return geohash.EncodeWithPrecision(lat, lon, encodePrecision)
}

// Approximate minimum cell dimension in kilometers per geohash length.
var cellSizeKm = [...]float64{4992.6, 624.1, 156.0, 19.5, 4.89, 0.61, 0.153, 0.0191, 0.00477}

// queryPrecision picks the finest cell length whose cells are still at least
// radiusM across, so a 3x3 cell grid around the center covers the full circle.
func queryPrecision(radiusM float64) uint {
	for p := len(cellSizeKm); p >= 2; p-- {
		if cellSizeKm[p-1]*1000 >= radiusM {
			return uint(p)
		}
	}
	return 1
}

// QueryBounds returns key ranges whose union contains every point within
// radiusM meters of the center. The ranges over-approximate: callers must
// post-filter candidates with Distance. Known limitation: cells that wrap the
// antimeridian or touch a pole can fall outside the returned ranges.
func QueryBounds(lat, lon, radiusM float64) []Bounds {
	p := queryPrecision(radiusM)
	center := geohash.EncodeWithPrecision(lat, lon, p)

	cells := map[string]struct{}{center: {}}
	for _, n := range geohash.Neighbors(center) {
		cells[n] = struct{}{}
	}

	keys := make([]string, 0, len(cells))
	for c := range cells {
		keys = append(keys, c)
	}
	sort.Strings(keys)

	bounds := make([]Bounds, 0, len(keys))
	for _, c := range keys {
		// "~" sorts after every geohash character, so [c, c+"~"] spans the
		// whole cell prefix.
		bounds = append(bounds, Bounds{Start: c, End: c + "~"})
	}
	return bounds
}

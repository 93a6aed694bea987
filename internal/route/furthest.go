package route

import "github.com/farpoint/farpoint-go/internal/geo"

// FurthestResult identifies the single point furthest from the
// reference across all segments. PointIndex is the zero-based position
// of the point within its segment's coordinate sequence.
type FurthestResult struct {
	DistanceKm float64
	Point      geo.Point
	Segment    *RouteSegment
	PointIndex int
}

// FindFurthest scans every point of every segment and returns the one
// with the greatest great-circle distance from the reference point.
// The comparison is strict, so the first point encountered in traversal
// order wins exact ties. An empty segment sequence returns ok=false;
// that is a valid outcome, not an error.
func FindFurthest(segments []RouteSegment, reference geo.Point) (FurthestResult, bool) {
	var best FurthestResult
	found := false

	for i := range segments {
		for j, p := range segments[i].Coordinates {
			d := geo.DistanceKm(reference, p)
			if !found || d > best.DistanceKm {
				best = FurthestResult{
					DistanceKm: d,
					Point:      p,
					Segment:    &segments[i],
					PointIndex: j,
				}
				found = true
			}
		}
	}

	return best, found
}

package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseReferencePoint parses free-form "lat,lon" text into a Point.
// Both components must be present and parse to finite numbers; anything
// else fails as a whole (no partial points). Note the token order is
// latitude first, the opposite of KML coordinate tuples.
func ParseReferencePoint(text string) (Point, error) {
	parts := strings.Split(text, ",")
	if len(parts) < 2 {
		return Point{}, fmt.Errorf("invalid reference point %q: expected \"lat,lon\"", text)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return Point{}, fmt.Errorf("invalid reference latitude %q", strings.TrimSpace(parts[0]))
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Point{}, fmt.Errorf("invalid reference longitude %q", strings.TrimSpace(parts[1]))
	}

	return Point{Latitude: lat, Longitude: lon}, nil
}

// Package geo provides geographic point types and great-circle distance math
package geo

// Point represents a geographic coordinate in decimal degrees.
// Altitude is in meters and nil when the source did not provide one.
type Point struct {
	Latitude  float64
	Longitude float64
	Altitude  *float64
}

// NewPoint creates a Point without altitude
func NewPoint(lat, lon float64) Point {
	return Point{Latitude: lat, Longitude: lon}
}

// NewPointAlt creates a Point with an altitude
func NewPointAlt(lat, lon, alt float64) Point {
	return Point{Latitude: lat, Longitude: lon, Altitude: &alt}
}

// HasAltitude reports whether the point carries an altitude value
func (p Point) HasAltitude() bool {
	return p.Altitude != nil
}

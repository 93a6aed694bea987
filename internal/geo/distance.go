package geo

import "math"

// EarthRadiusKm is the mean Earth radius in kilometers (IUGG value)
const EarthRadiusKm = 6371.0088

// DistanceKm calculates the great-circle distance in kilometers between
// two points using the haversine formula. The atan2 form is used rather
// than the spherical law of cosines so that precision holds up for both
// very small and near-antipodal separations.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

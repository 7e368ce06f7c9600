package location

import "math"

const earthRadiusKm = 6371

// DuplicateThresholdKm is the great-circle distance under which two same-named
// locations are treated as the same physical place (100 m).
const DuplicateThresholdKm = 0.1

// Haversine returns the great-circle distance in kilometers between two
// latitude/longitude points given in degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

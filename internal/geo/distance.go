// Package geo holds the one canonical great-circle distance implementation
// and the proximity ranking pipeline built on it.  Every distance shown or
// filtered anywhere in the client goes through DistanceKm; no other file
// may duplicate the formula.
package geo

import (
    "math"

    "github.com/cinecatch/client-core/internal/model"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers using the Haversine formula.  It is symmetric, non-negative
// and approximately zero for identical points.
func DistanceKm(a, b model.Coordinate) float64 {
    dLat := radians(b.Lat - a.Lat)
    dLng := radians(b.Lng - a.Lng)

    sinLat := math.Sin(dLat / 2)
    sinLng := math.Sin(dLng / 2)

    h := sinLat*sinLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sinLng*sinLng

    return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(degrees float64) float64 {
    return degrees * math.Pi / 180.0
}

package model

// Coordinate is an immutable point on the globe expressed in degrees.
// Latitude is bounded to [-90, 90] and longitude to [-180, 180]; values
// come either from the backend DTOs or from the device via the location
// provider and are never mutated after construction.
type Coordinate struct {
    Lat float64 `json:"lat"` // latitude in degrees
    Lng float64 `json:"lng"` // longitude in degrees
}

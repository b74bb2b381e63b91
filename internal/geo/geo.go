// Package geo provides great-circle distance helpers over orb points.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used for haversine distances.
const earthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance between two points
// in kilometers. Points follow the orb convention: (longitude, latitude).
func DistanceKm(a, b orb.Point) float64 {
	latA := degreesToRadians(a.Lat())
	latB := degreesToRadians(b.Lat())
	deltaLat := degreesToRadians(b.Lat() - a.Lat())
	deltaLon := degreesToRadians(b.Lon() - a.Lon())

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// DistanceMeters returns the haversine distance between two points in meters.
func DistanceMeters(a, b orb.Point) float64 {
	return DistanceKm(a, b) * 1000.0
}

// WithinRadiusKm reports whether b lies within radiusKm of a.
func WithinRadiusKm(a, b orb.Point, radiusKm float64) bool {
	return DistanceKm(a, b) <= radiusKm
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	p := orb.Point{126.9780, 37.5665}

	assert.Zero(t, DistanceKm(p, p))
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Seoul City Hall to Gangnam Station is roughly 8.9 km straight-line.
	cityHall := orb.Point{126.9780, 37.5665}
	gangnam := orb.Point{127.0276, 37.4979}

	d := DistanceKm(cityHall, gangnam)

	assert.InDelta(t, 8.9, d, 0.3)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := orb.Point{126.9780, 37.5665}
	b := orb.Point{127.0276, 37.4979}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestWithinRadiusKm(t *testing.T) {
	center := orb.Point{126.9780, 37.5665}
	// ~300 m east of center.
	near := orb.Point{126.9814, 37.5665}

	assert.True(t, WithinRadiusKm(center, near, 0.5))
	assert.False(t, WithinRadiusKm(center, near, 0.1))
}

func TestDistanceMeters(t *testing.T) {
	a := orb.Point{126.9780, 37.5665}
	b := orb.Point{126.9814, 37.5665}

	assert.InDelta(t, DistanceKm(a, b)*1000.0, DistanceMeters(a, b), 1e-9)
}

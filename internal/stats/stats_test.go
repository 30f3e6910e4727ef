package stats

import (
	"testing"

	"github.com/jengwei/trip-report/internal/models"
	"github.com/jengwei/trip-report/internal/spatial"
	"github.com/stretchr/testify/assert"
)

func TestComputeAvgSpeedMatchesDistanceOverDuration(t *testing.T) {
	// 3 points equally spaced 10 minutes apart along a meridian
	trip := models.Trip{Points: []models.GpsPoint{
		{Latitude: 46.00, Longitude: 7.0, Timestamp: 0},
		{Latitude: 46.05, Longitude: 7.0, Timestamp: 600},
		{Latitude: 46.10, Longitude: 7.0, Timestamp: 1200},
	}}

	s := Compute(trip)

	assert.Equal(t, int64(1200), s.DurationSeconds)
	assert.Equal(t, 3, s.PointCount)
	assert.Equal(t, s.TotalDistanceKm/(float64(s.DurationSeconds)/3600), s.AvgSpeedKmh)
}

func TestComputeTotalDistanceSumsConsecutivePairs(t *testing.T) {
	p1 := models.GpsPoint{Latitude: 46.00, Longitude: 7.0, Timestamp: 0}
	p2 := models.GpsPoint{Latitude: 46.01, Longitude: 7.0, Timestamp: 60}
	p3 := models.GpsPoint{Latitude: 46.01, Longitude: 7.01, Timestamp: 120}

	s := Compute(models.Trip{Points: []models.GpsPoint{p1, p2, p3}})

	want := spatial.DistanceKm(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude) +
		spatial.DistanceKm(p2.Latitude, p2.Longitude, p3.Latitude, p3.Longitude)
	assert.InDelta(t, want, s.TotalDistanceKm, 1e-12)
}

func TestComputeZeroDurationTrip(t *testing.T) {
	// All points share a timestamp: both speeds must be zero, not NaN/Inf
	trip := models.Trip{Points: []models.GpsPoint{
		{Latitude: 46.00, Longitude: 7.0, Timestamp: 500},
		{Latitude: 46.01, Longitude: 7.0, Timestamp: 500},
		{Latitude: 46.02, Longitude: 7.0, Timestamp: 500},
	}}

	s := Compute(trip)

	assert.Equal(t, int64(0), s.DurationSeconds)
	assert.Zero(t, s.AvgSpeedKmh)
	assert.Zero(t, s.MaxSpeedKmh)
	assert.Greater(t, s.TotalDistanceKm, 0.0)
}

func TestComputeMaxSpeedSkipsZeroTimePairs(t *testing.T) {
	// First pair has no elapsed time, second pair moves slowly
	trip := models.Trip{Points: []models.GpsPoint{
		{Latitude: 46.00, Longitude: 7.0, Timestamp: 0},
		{Latitude: 46.05, Longitude: 7.0, Timestamp: 0},
		{Latitude: 46.051, Longitude: 7.0, Timestamp: 3600},
	}}

	s := Compute(trip)

	slowKm := spatial.DistanceKm(46.05, 7.0, 46.051, 7.0)
	assert.InDelta(t, slowKm, s.MaxSpeedKmh, 1e-9) // 1 hour elapsed
}

func TestComputeMaxSpeedPicksFastestPair(t *testing.T) {
	trip := models.Trip{Points: []models.GpsPoint{
		{Latitude: 46.00, Longitude: 7.0, Timestamp: 0},
		{Latitude: 46.01, Longitude: 7.0, Timestamp: 600},  // ~1.1 km in 10 min
		{Latitude: 46.03, Longitude: 7.0, Timestamp: 1200}, // ~2.2 km in 10 min
	}}

	s := Compute(trip)

	fastKm := spatial.DistanceKm(46.01, 7.0, 46.03, 7.0)
	assert.InDelta(t, fastKm/(600.0/3600.0), s.MaxSpeedKmh, 1e-9)
	assert.Greater(t, s.MaxSpeedKmh, s.AvgSpeedKmh)
}

func TestComputeTwoIdenticalPoints(t *testing.T) {
	trip := models.Trip{Points: []models.GpsPoint{
		{Latitude: 46.0, Longitude: 7.0, Timestamp: 100},
		{Latitude: 46.0, Longitude: 7.0, Timestamp: 200},
	}}

	s := Compute(trip)

	assert.Zero(t, s.TotalDistanceKm)
	assert.Equal(t, int64(100), s.DurationSeconds)
	assert.Zero(t, s.AvgSpeedKmh)
	assert.Zero(t, s.MaxSpeedKmh)
}

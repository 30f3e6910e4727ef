package report

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengwei/trip-report/internal/models"
)

func twoPointTrip(lat float64) models.Trip {
	return models.Trip{Points: []models.GpsPoint{
		{Latitude: lat, Longitude: 7.0, Timestamp: 0},
		{Latitude: lat + 0.001, Longitude: 7.0, Timestamp: 60},
	}}
}

func TestAssembleDropsSinglePointTrips(t *testing.T) {
	trips := []models.Trip{
		twoPointTrip(46.0),
		{Points: []models.GpsPoint{{Latitude: 50.0, Longitude: 8.0, Timestamp: 5000}}},
		twoPointTrip(47.0),
	}

	r := NewAssembler().Assemble(trips, models.ProcessingSummary{}, "")

	require.Len(t, r.Features.Features, 2)
	// Ids stay dense: the dropped trip does not consume one
	assert.Equal(t, "trip_1", r.Features.Features[0].Properties["trip_id"])
	assert.Equal(t, "trip_2", r.Features.Features[1].Properties["trip_id"])
}

func TestAssembleEmptyTripList(t *testing.T) {
	r := NewAssembler().Assemble(nil, models.ProcessingSummary{TotalRows: 3, RejectedRows: 3}, "log text")

	assert.Empty(t, r.Features.Features)
	assert.Equal(t, 3, r.Summary.TotalRows)
	assert.Equal(t, "log text", r.RejectLog)
	assert.NotEmpty(t, r.RunID)
}

func TestAssembleGeometryIsLonLat(t *testing.T) {
	trip := models.Trip{Points: []models.GpsPoint{
		{Latitude: 46.5, Longitude: 7.25, Timestamp: 0},
		{Latitude: 46.6, Longitude: 7.35, Timestamp: 60},
	}}

	r := NewAssembler().Assemble([]models.Trip{trip}, models.ProcessingSummary{}, "")

	line, ok := r.Features.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	require.Len(t, line, 2)
	assert.Equal(t, orb.Point{7.25, 46.5}, line[0])
	assert.Equal(t, orb.Point{7.35, 46.6}, line[1])
}

func TestAssemblePaletteCycles(t *testing.T) {
	var trips []models.Trip
	for i := 0; i < len(DefaultPalette)+2; i++ {
		trips = append(trips, twoPointTrip(40.0+float64(i)*0.01))
	}

	r := NewAssembler().Assemble(trips, models.ProcessingSummary{}, "")

	features := r.Features.Features
	require.Len(t, features, len(DefaultPalette)+2)
	assert.Equal(t, DefaultPalette[0], features[0].Properties["color"])
	assert.Equal(t, DefaultPalette[0], features[len(DefaultPalette)].Properties["color"])
	assert.Equal(t, DefaultPalette[1], features[len(DefaultPalette)+1].Properties["color"])
}

func TestAssembleFormatsTimesAndRoundsStats(t *testing.T) {
	trip := models.Trip{Points: []models.GpsPoint{
		{Latitude: 46.0, Longitude: 7.0, Timestamp: 1735689600}, // 2025-01-01 00:00:00 UTC
		{Latitude: 46.05, Longitude: 7.0, Timestamp: 1735690200},
	}}

	r := NewAssembler().Assemble([]models.Trip{trip}, models.ProcessingSummary{}, "")

	props := r.Features.Features[0].Properties
	assert.Equal(t, "2025-01-01 00:00:00", props["start_time"])
	assert.Equal(t, "2025-01-01 00:10:00", props["end_time"])
	assert.Equal(t, int64(600), props["duration_s"])
	assert.Equal(t, 2, props["point_count"])

	// 0.05 degrees of latitude is ~5.56 km in 10 minutes
	assert.InDelta(t, 5.56, props["total_distance_km"].(float64), 0.01)
	assert.InDelta(t, 33.36, props["avg_speed_kmh"].(float64), 0.05)
	assert.Equal(t, props["avg_speed_kmh"], props["max_speed_kmh"])
}

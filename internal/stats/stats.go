package stats

import (
	"github.com/jengwei/trip-report/internal/models"
	"github.com/jengwei/trip-report/internal/spatial"
)

// Compute derives aggregate metrics for a trip with at least two points.
// Total over its input domain: no error cases, all outputs non-negative.
// Rounding for presentation happens at assembly, not here.
func Compute(trip models.Trip) models.TripStats {
	points := trip.Points

	var totalDistanceKm float64
	var maxSpeedKmh float64

	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		curr := points[i]

		pairKm := spatial.DistanceKm(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)
		totalDistanceKm += pairKm

		// Instantaneous speed only exists for pairs with elapsed time
		if dt := curr.Timestamp - prev.Timestamp; dt > 0 {
			speed := pairKm / (float64(dt) / 3600)
			if speed > maxSpeedKmh {
				maxSpeedKmh = speed
			}
		}
	}

	duration := trip.EndTime() - trip.StartTime()

	var avgSpeedKmh float64
	if duration > 0 {
		avgSpeedKmh = totalDistanceKm / (float64(duration) / 3600)
	}

	return models.TripStats{
		TotalDistanceKm: totalDistanceKm,
		DurationSeconds: duration,
		AvgSpeedKmh:     avgSpeedKmh,
		MaxSpeedKmh:     maxSpeedKmh,
		PointCount:      len(points),
	}
}

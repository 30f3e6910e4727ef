package segment

import (
	"sort"

	"github.com/jengwei/trip-report/internal/models"
	"github.com/jengwei/trip-report/internal/spatial"
)

// Default thresholds: a long idle gap or a large spatial jump between
// consecutive fixes means the device went offline or off-trip. Either alone
// closes the current trip.
const (
	DefaultMaxTimeGapSeconds = 1500
	DefaultMaxDistanceKm     = 2.0
)

// Segmenter splits a chronological point stream into trips
type Segmenter struct {
	MaxTimeGapSeconds int64
	MaxDistanceKm     float64
}

// New creates a segmenter with the default thresholds
func New() *Segmenter {
	return &Segmenter{
		MaxTimeGapSeconds: DefaultMaxTimeGapSeconds,
		MaxDistanceKm:     DefaultMaxDistanceKm,
	}
}

// SortPoints orders points ascending by timestamp. The sort is stable, so
// points sharing a timestamp keep their input order.
func SortPoints(points []models.GpsPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})
}

// Split partitions sorted points into trips. Every input point lands in
// exactly one trip, relative order preserved; single-point trips are kept
// here and filtered later at assembly.
func (s *Segmenter) Split(points []models.GpsPoint) []models.Trip {
	if len(points) == 0 {
		return nil
	}

	var trips []models.Trip
	current := models.Trip{Points: []models.GpsPoint{points[0]}}

	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		curr := points[i]

		timeGap := curr.Timestamp - prev.Timestamp
		distGap := spatial.DistanceKm(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)

		if timeGap > s.MaxTimeGapSeconds || distGap > s.MaxDistanceKm {
			trips = append(trips, current)
			current = models.Trip{Points: []models.GpsPoint{curr}}
			continue
		}
		current.Points = append(current.Points, curr)
	}

	return append(trips, current)
}

package models

// Trip is a maximal run of consecutive validated points with no internal
// time gap or distance jump exceeding the segmentation thresholds.
// Points are in non-decreasing timestamp order.
type Trip struct {
	Points []GpsPoint `json:"points"`
}

// PointCount returns the number of points in the trip
func (t Trip) PointCount() int {
	return len(t.Points)
}

// StartTime returns the timestamp of the first point (0 for an empty trip)
func (t Trip) StartTime() int64 {
	if len(t.Points) == 0 {
		return 0
	}
	return t.Points[0].Timestamp
}

// EndTime returns the timestamp of the last point (0 for an empty trip)
func (t Trip) EndTime() int64 {
	if len(t.Points) == 0 {
		return 0
	}
	return t.Points[len(t.Points)-1].Timestamp
}

// TripStats holds per-trip aggregate metrics, recomputed every run
type TripStats struct {
	TotalDistanceKm float64 `json:"total_distance_km"`
	DurationSeconds int64   `json:"duration_s"`
	AvgSpeedKmh     float64 `json:"avg_speed_kmh"`
	MaxSpeedKmh     float64 `json:"max_speed_kmh"`
	PointCount      int     `json:"point_count"`
}

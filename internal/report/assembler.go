package report

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/jengwei/trip-report/internal/models"
	"github.com/jengwei/trip-report/internal/spatial"
	"github.com/jengwei/trip-report/internal/stats"
)

const timeLayout = "2006-01-02 15:04:05"

// Assembler packages trips and run counters into the final report
type Assembler struct {
	Palette []string
	now     func() time.Time
}

// NewAssembler creates an assembler with the default palette
func NewAssembler() *Assembler {
	return &Assembler{Palette: DefaultPalette, now: time.Now}
}

// Assemble builds the feature collection. Trips with fewer than two points
// carry no meaningful distance or speed and are silently excluded; trip ids
// are dense over emitted trips, so dropped trips never consume an id.
func (a *Assembler) Assemble(trips []models.Trip, summary models.ProcessingSummary, rejectLog string) models.Report {
	fc := geojson.NewFeatureCollection()

	emitted := 0
	for _, trip := range trips {
		if trip.PointCount() < 2 {
			continue
		}

		fc.Append(a.feature(trip, emitted))
		emitted++
	}

	return models.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: a.now().UTC(),
		Features:    fc,
		Summary:     summary,
		RejectLog:   rejectLog,
	}
}

func (a *Assembler) feature(trip models.Trip, emittedIndex int) *geojson.Feature {
	line := make(orb.LineString, 0, trip.PointCount())
	for _, p := range trip.Points {
		line = append(line, orb.Point{p.Longitude, p.Latitude})
	}

	tripStats := stats.Compute(trip)
	first := trip.Points[0]
	last := trip.Points[len(trip.Points)-1]

	f := geojson.NewFeature(line)
	f.ID = fmt.Sprintf("trip_%d", emittedIndex+1)
	f.Properties = geojson.Properties{
		"trip_id":           fmt.Sprintf("trip_%d", emittedIndex+1),
		"color":             colorFor(a.Palette, emittedIndex),
		"total_distance_km": round2(tripStats.TotalDistanceKm),
		"duration_s":        tripStats.DurationSeconds,
		"avg_speed_kmh":     round2(tripStats.AvgSpeedKmh),
		"max_speed_kmh":     round2(tripStats.MaxSpeedKmh),
		"point_count":       tripStats.PointCount,
		"start_time":        time.Unix(first.Timestamp, 0).UTC().Format(timeLayout),
		"end_time":          time.Unix(last.Timestamp, 0).UTC().Format(timeLayout),
		"start_bearing_deg": round2(spatial.Bearing(first.Latitude, first.Longitude, last.Latitude, last.Longitude)),
	}
	return f
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

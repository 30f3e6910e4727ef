package models

import (
	"time"

	"github.com/paulmach/orb/geojson"
)

// ProcessingSummary holds row-level counters for one pipeline run.
// Invariant: TotalRows = ValidPoints + RejectedRows.
type ProcessingSummary struct {
	TotalRows    int `json:"total_rows"`
	ValidPoints  int `json:"valid_points"`
	RejectedRows int `json:"rejected_rows"`
}

// Report is the pipeline's final output: one LineString feature per emitted
// trip, the run counters, and the raw reject-log text. This is the sole
// contract with rendering collaborators.
type Report struct {
	RunID       string                     `json:"run_id"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Features    *geojson.FeatureCollection `json:"features"`
	Summary     ProcessingSummary          `json:"summary"`
	RejectLog   string                     `json:"reject_log"`
}

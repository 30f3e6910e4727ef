package pipeline

import (
	"fmt"
	"log"

	"github.com/jengwei/trip-report/internal/ingest"
	"github.com/jengwei/trip-report/internal/models"
	"github.com/jengwei/trip-report/internal/report"
	"github.com/jengwei/trip-report/internal/segment"
)

// Pipeline runs the full cleaning, segmentation and statistics flow over
// one finite snapshot of raw rows. A run is single-threaded and owns all
// of its state; nothing is shared across runs.
type Pipeline struct {
	segmenter *segment.Segmenter
	assembler *report.Assembler
}

// New creates a pipeline with the given segmenter and assembler
func New(segmenter *segment.Segmenter, assembler *report.Assembler) *Pipeline {
	return &Pipeline{segmenter: segmenter, assembler: assembler}
}

// Default creates a pipeline with default thresholds and palette
func Default() *Pipeline {
	return New(segment.New(), report.NewAssembler())
}

// Run processes raw rows end to end. Invalid rows are rejected into the
// sink and counted, never fatal; a sink write failure is the one error
// this returns.
func (p *Pipeline) Run(rows [][]string, sink ingest.Sink) (models.Report, error) {
	buffered := &teeSink{inner: sink}

	points, summary, err := ingest.NewValidator(buffered).ValidateAll(rows)
	if err != nil {
		return models.Report{}, fmt.Errorf("validation failed: %w", err)
	}

	segment.SortPoints(points)
	trips := p.segmenter.Split(points)

	result := p.assembler.Assemble(trips, summary, buffered.text())

	log.Printf("[Pipeline] Processed %d rows: %d valid, %d rejected, %d trips (%d emitted)",
		summary.TotalRows, summary.ValidPoints, summary.RejectedRows,
		len(trips), len(result.Features.Features))

	return result, nil
}

// RunFile reads the input file and processes it. A missing file degrades to
// an empty run with all-zero counters so callers always get a renderable
// result.
func (p *Pipeline) RunFile(path string, sink ingest.Sink) (models.Report, error) {
	rows, err := ingest.ReadFile(path)
	if err != nil {
		return models.Report{}, err
	}

	return p.Run(rows, sink)
}

// teeSink mirrors every reject into an in-memory buffer so the report can
// carry the log text regardless of the caller's sink choice
type teeSink struct {
	inner  ingest.Sink
	buffer ingest.BufferSink
}

func (t *teeSink) Write(rec models.RejectRecord) error {
	if err := t.inner.Write(rec); err != nil {
		return err
	}
	return t.buffer.Write(rec)
}

func (t *teeSink) text() string {
	return t.buffer.String()
}

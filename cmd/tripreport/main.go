package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jengwei/trip-report/internal/ingest"
	"github.com/jengwei/trip-report/internal/pipeline"
	"github.com/jengwei/trip-report/internal/report"
	"github.com/jengwei/trip-report/internal/segment"
)

func main() {
	var (
		inputFile  = flag.String("i", "", "Input delimited file (device_id,lat,lon,timestamp with header)")
		outputFile = flag.String("o", "", "Output report JSON (default: <input>_report.json)")
		rejectFile = flag.String("rejects", "rejects.log", "Reject log path (truncated at run start)")
		maxGap     = flag.Int64("max-gap", segment.DefaultMaxTimeGapSeconds, "Maximum time gap between consecutive points in seconds")
		maxJump    = flag.Float64("max-jump", segment.DefaultMaxDistanceKm, "Maximum distance jump between consecutive points in km")
	)

	flag.Usage = func() {
		fmt.Printf("tripreport - Segment raw GPS fixes into trips with per-trip statistics\n\n")
		fmt.Printf("usage: tripreport -i /path/to/fixes.csv\n\n")
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *outputFile == "" {
		ext := filepath.Ext(*inputFile)
		*outputFile = strings.TrimSuffix(*inputFile, ext) + "_report.json"
	}

	sink, err := ingest.NewFileSink(*rejectFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer sink.Close()

	segmenter := &segment.Segmenter{
		MaxTimeGapSeconds: *maxGap,
		MaxDistanceKm:     *maxJump,
	}
	p := pipeline.New(segmenter, report.NewAssembler())

	result, err := p.RunFile(*inputFile, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to encode report: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("Processed %d rows: %d valid, %d rejected\n",
		result.Summary.TotalRows, result.Summary.ValidPoints, result.Summary.RejectedRows)
	fmt.Printf("Emitted %d trips to %s (rejects in %s)\n",
		len(result.Features.Features), *outputFile, *rejectFile)
}

package report

// DefaultPalette is the fixed set of colors assigned to emitted trips.
// Colors repeat once the palette is exhausted.
var DefaultPalette = []string{
	"#e6194b",
	"#3cb44b",
	"#4363d8",
	"#f58231",
	"#911eb4",
	"#46f0f0",
	"#f032e6",
	"#bcf60c",
	"#008080",
	"#9a6324",
}

// colorFor cycles the palette by emitted-feature position
func colorFor(palette []string, emittedIndex int) string {
	return palette[emittedIndex%len(palette)]
}

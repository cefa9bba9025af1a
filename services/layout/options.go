// Package layout lays out a week of work shifts as non-overlapping
// rectangles on a shared vertical time axis. The whole pipeline is pure:
// raw records in, placed boxes plus a rejection diagnostic out, no I/O and
// no shared state. Callers re-run it whenever filters or zoom change.
package layout

// Options holds the rendering constants that historically drifted between
// the duplicated schedule views. Each call site injects its own copy.
type Options struct {
	MinEventHeightPx int // shortest visible shift must render at least this tall
	BasePxPerHour    int // lower clamp for the computed density
	MaxPxPerHour     int // upper clamp for the computed density

	MinDurationFloor int // minutes; guards the density formula against tiny shifts

	MinVisibleSpanMin int // narrowest allowed visible window, minutes
	MaxVisibleSpanMin int // widest allowed visible window, minutes

	ColumnGapPct float64 // horizontal gap between sibling columns, percent
	MinHeightPct float64 // floor for a rendered box height, percent

	MinZoom float64
	MaxZoom float64
}

// DefaultOptions returns the constants shared by the student and building
// schedule views.
func DefaultOptions() Options {
	return Options{
		MinEventHeightPx:  18,
		BasePxPerHour:     40,
		MaxPxPerHour:      240,
		MinDurationFloor:  5,
		MinVisibleSpanMin: 120,
		MaxVisibleSpanMin: 1440,
		ColumnGapPct:      1.0,
		MinHeightPct:      0.75,
		MinZoom:           0.5,
		MaxZoom:           2.5,
	}
}

package layout

import "math"

// ScaleConfig is the adaptive vertical scale shared by every box in a view.
type ScaleConfig struct {
	MinStart      int     `json:"minStart"` // visible window, minutes from midnight
	MaxEnd        int     `json:"maxEnd"`
	PixelsPerHour int     `json:"pixelsPerHour"`
	Zoom          float64 `json:"zoom"`
	FontTier      int     `json:"fontTier"` // tier of the shortest visible shift
}

// Default visible window when nothing is on screen: 08:00-18:00.
const (
	defaultWindowStart = 8 * 60
	defaultWindowEnd   = 18 * 60
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// VisibleBounds derives the window covering the given intervals, floored
// and ceiled to whole hours, then widened to the minimum span. An empty
// set falls back to the default window.
func VisibleBounds(intervals []TimeInterval, opts Options) (int, int) {
	if len(intervals) == 0 {
		return defaultWindowStart, defaultWindowEnd
	}
	minStart, maxEnd := intervals[0].StartMinute, intervals[0].EndMinute
	for _, iv := range intervals[1:] {
		if iv.StartMinute < minStart {
			minStart = iv.StartMinute
		}
		if iv.EndMinute > maxEnd {
			maxEnd = iv.EndMinute
		}
	}
	minStart = (minStart / 60) * 60
	if maxEnd%60 != 0 {
		maxEnd = (maxEnd/60 + 1) * 60
	}
	for maxEnd-minStart < opts.MinVisibleSpanMin {
		if minStart >= 60 {
			minStart -= 60
		} else if maxEnd <= 1440-60 {
			maxEnd += 60
		} else {
			break
		}
	}
	if maxEnd-minStart > opts.MaxVisibleSpanMin {
		maxEnd = minStart + opts.MaxVisibleSpanMin
	}
	return minStart, maxEnd
}

// Scale computes the pixels-per-hour density and base font tier for a view.
// Density grows until the shortest visible shift renders no shorter than
// MinEventHeightPx, clamped to the configured band; the user zoom then
// multiplies on top within a wider band so manual zoom can override the
// heuristic without producing an unusable grid.
func Scale(minStart, maxEnd int, visible []TimeInterval, zoom float64, opts Options) ScaleConfig {
	zoom = math.Min(math.Max(zoom, opts.MinZoom), opts.MaxZoom)

	minDuration := 60
	if len(visible) > 0 {
		minDuration = visible[0].DurationMinutes()
		for _, iv := range visible[1:] {
			if d := iv.DurationMinutes(); d < minDuration {
				minDuration = d
			}
		}
	}
	if minDuration < opts.MinDurationFloor {
		minDuration = opts.MinDurationFloor
	}

	pph := int(math.Ceil(float64(opts.MinEventHeightPx) * 60 / float64(minDuration)))
	pph = clampInt(pph, opts.BasePxPerHour, opts.MaxPxPerHour)

	scaled := int(math.Round(float64(pph) * zoom))
	scaled = clampInt(scaled, opts.BasePxPerHour/2, opts.MaxPxPerHour*2)

	return ScaleConfig{
		MinStart:      minStart,
		MaxEnd:        maxEnd,
		PixelsPerHour: scaled,
		Zoom:          zoom,
		FontTier:      FontTier(minDuration, scaled),
	}
}

// FontTier buckets a shift's rendered pixel height into a discrete font
// size class. Tier 0 is the legibility floor; text never shrinks below it.
func FontTier(durationMinutes, pixelsPerHour int) int {
	heightPx := float64(durationMinutes) / 60 * float64(pixelsPerHour)
	switch {
	case heightPx >= 48:
		return 3
	case heightPx >= 28:
		return 2
	case heightPx >= 16:
		return 1
	default:
		return 0
	}
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deptdesk/models"
)

func TestVisibleBoundsEmptyFallsBack(t *testing.T) {
	lo, hi := VisibleBounds(nil, DefaultOptions())
	assert.Equal(t, 8*60, lo)
	assert.Equal(t, 18*60, hi)
}

func TestVisibleBoundsRoundsToHours(t *testing.T) {
	lo, hi := VisibleBounds([]TimeInterval{
		iv(models.Monday, 9*60+15, 11*60+40, "ann"),
		iv(models.Monday, 8*60+5, 9*60, "bob"),
	}, DefaultOptions())
	assert.Equal(t, 8*60, lo)
	assert.Equal(t, 12*60, hi)
}

func TestVisibleBoundsEnforcesMinimumSpan(t *testing.T) {
	lo, hi := VisibleBounds([]TimeInterval{iv(models.Monday, 9*60, 9*60+30, "ann")}, DefaultOptions())
	assert.GreaterOrEqual(t, hi-lo, DefaultOptions().MinVisibleSpanMin)
	assert.LessOrEqual(t, lo, 9*60)
	assert.GreaterOrEqual(t, hi, 9*60+30)
}

// A 15-minute shift among hour-long ones pushes the density up until the
// short box clears the minimum height, clamped at the maximum.
func TestScaleShortShiftRaisesDensity(t *testing.T) {
	opts := DefaultOptions()
	visible := []TimeInterval{
		iv(models.Monday, 9*60, 10*60, "ann"),
		iv(models.Monday, 10*60, 10*60+15, "bob"),
		iv(models.Monday, 11*60, 12*60, "cyd"),
	}
	sc := Scale(8*60, 13*60, visible, 1.0, opts)

	shortHeight := 15.0 / 60 * float64(sc.PixelsPerHour)
	assert.GreaterOrEqual(t, shortHeight, float64(opts.MinEventHeightPx))
	assert.LessOrEqual(t, sc.PixelsPerHour, opts.MaxPxPerHour)

	// Hour-long shifts alone sit at the base density.
	long := Scale(8*60, 13*60, visible[:1], 1.0, opts)
	assert.Equal(t, opts.BasePxPerHour, long.PixelsPerHour)
	assert.Greater(t, sc.PixelsPerHour, long.PixelsPerHour)
}

func TestScaleTinyShiftClampedAtMax(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxPxPerHour = 150
	sc := Scale(8*60, 18*60, []TimeInterval{iv(models.Monday, 9*60, 9*60+2, "ann")}, 1.0, opts)
	assert.Equal(t, 150, sc.PixelsPerHour)

	// The duration floor keeps the pre-clamp density finite as well.
	opts.MaxPxPerHour = 1000
	sc = Scale(8*60, 18*60, []TimeInterval{iv(models.Monday, 9*60, 9*60+2, "ann")}, 1.0, opts)
	assert.Equal(t, opts.MinEventHeightPx*60/opts.MinDurationFloor, sc.PixelsPerHour)
}

func TestScaleEmptyVisibleSet(t *testing.T) {
	opts := DefaultOptions()
	sc := Scale(8*60, 18*60, nil, 1.0, opts)
	assert.Equal(t, opts.BasePxPerHour, sc.PixelsPerHour)
	assert.Equal(t, 1.0, sc.Zoom)
}

func TestScaleZoomClampedSilently(t *testing.T) {
	opts := DefaultOptions()
	visible := []TimeInterval{iv(models.Monday, 9*60, 10*60, "ann")}

	low := Scale(8*60, 18*60, visible, 0.01, opts)
	assert.Equal(t, opts.MinZoom, low.Zoom)
	assert.GreaterOrEqual(t, low.PixelsPerHour, opts.BasePxPerHour/2)

	high := Scale(8*60, 18*60, visible, 99, opts)
	assert.Equal(t, opts.MaxZoom, high.Zoom)
	assert.LessOrEqual(t, high.PixelsPerHour, opts.MaxPxPerHour*2)
}

func TestFontTierSteps(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		pph      int
		want     int
	}{
		{"hour at base density", 60, 40, 2},
		{"tall block", 120, 40, 3},
		{"short block", 20, 40, 0},
		{"short block at high density", 20, 120, 2},
		{"legibility floor", 5, 40, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FontTier(tc.duration, tc.pph))
		})
	}
}

// Tiers never decrease as the rendered height grows.
func TestFontTierMonotonic(t *testing.T) {
	prev := FontTier(1, 40)
	for d := 2; d <= 600; d++ {
		cur := FontTier(d, 40)
		assert.GreaterOrEqual(t, cur, prev, "duration %d", d)
		prev = cur
	}
}

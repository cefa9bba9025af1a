package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deptdesk/models"
)

func TestProjectSingleColumn(t *testing.T) {
	opts := DefaultOptions()
	sc := ScaleConfig{MinStart: 8 * 60, MaxEnd: 18 * 60}
	a := Assignment{
		Interval:    iv(models.Monday, 9*60, 10*60, "ann"),
		ColumnIndex: 0,
		ColumnCount: 1,
	}
	box := Project(a, sc, opts)
	assert.InDelta(t, 10.0, box.TopPct, 1e-9)  // one hour into a ten-hour window
	assert.InDelta(t, 10.0, box.HeightPct, 1e-9)
	assert.InDelta(t, 0.0, box.LeftPct, 1e-9)
	assert.InDelta(t, 100.0, box.WidthPct, 1e-9)
}

func TestProjectSplitsTrackAmongColumns(t *testing.T) {
	opts := DefaultOptions()
	opts.ColumnGapPct = 2.0
	sc := ScaleConfig{MinStart: 8 * 60, MaxEnd: 18 * 60}

	left := Project(Assignment{
		Interval: iv(models.Monday, 9*60, 10*60, "ann"), ColumnIndex: 0, ColumnCount: 2,
	}, sc, opts)
	right := Project(Assignment{
		Interval: iv(models.Monday, 9*60+30, 10*60+30, "bob"), ColumnIndex: 1, ColumnCount: 2,
	}, sc, opts)

	assert.InDelta(t, 49.0, left.WidthPct, 1e-9) // (100 - gap) / 2
	assert.Equal(t, left.WidthPct, right.WidthPct)
	assert.InDelta(t, 0.0, left.LeftPct, 1e-9)
	assert.InDelta(t, 52.0, right.LeftPct, 1e-9) // 50 + gap
	assert.Greater(t, right.TopPct, left.TopPct)
}

func TestProjectEnforcesMinimumHeight(t *testing.T) {
	opts := DefaultOptions()
	sc := ScaleConfig{MinStart: 0, MaxEnd: 1440}
	box := Project(Assignment{
		Interval: iv(models.Monday, 12*60, 12*60+5, "ann"), ColumnIndex: 0, ColumnCount: 1,
	}, sc, opts)
	assert.Equal(t, opts.MinHeightPct, box.HeightPct)
}

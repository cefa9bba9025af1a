package layout

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptdesk/models"
)

func clock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

func TestBuildWeekOverlappingPair(t *testing.T) {
	week, diag := BuildWeek([]models.ShiftRecord{
		rec(models.Monday, "09:00", "10:00", "ann"),
		rec(models.Monday, "09:30", "10:30", "bob"),
	}, DayFilterAll, 1.0, DefaultOptions())

	require.Equal(t, 0, diag.RejectedCount())
	placed := week.Days[models.Monday]
	require.Len(t, placed, 2)
	assert.Equal(t, 2, placed[0].ColumnCount)
	assert.Equal(t, 2, placed[1].ColumnCount)
	assert.NotEqual(t, placed[0].ColumnIndex, placed[1].ColumnIndex)
}

func TestBuildWeekBackToBackShareNoCluster(t *testing.T) {
	week, _ := BuildWeek([]models.ShiftRecord{
		rec(models.Monday, "08:00", "09:00", "ann"),
		rec(models.Monday, "09:00", "10:00", "bob"),
		rec(models.Monday, "10:00", "11:00", "cyd"),
	}, DayFilterAll, 1.0, DefaultOptions())

	placed := week.Days[models.Monday]
	require.Len(t, placed, 3)
	for _, p := range placed {
		assert.Equal(t, 0, p.ColumnIndex)
		assert.Equal(t, 1, p.ColumnCount)
		assert.InDelta(t, 100.0, p.Box.WidthPct, 1e-9)
	}
}

func TestBuildWeekEmptyInput(t *testing.T) {
	week, diag := BuildWeek(nil, DayFilterAll, 1.0, DefaultOptions())
	require.NotNil(t, week.Days)
	for _, day := range models.WeekDays {
		assert.Empty(t, week.Days[day])
	}
	assert.Equal(t, 0, diag.RejectedCount())
	assert.Equal(t, DefaultOptions().BasePxPerHour, week.Scale.PixelsPerHour)
}

func TestBuildWeekMalformedRecordExcluded(t *testing.T) {
	week, diag := BuildWeek([]models.ShiftRecord{
		rec(models.Monday, "09:00", "10:00", "ann"),
		rec(models.Monday, "25:99", "10:00", "bob"),
	}, DayFilterAll, 1.0, DefaultOptions())

	assert.Equal(t, 1, diag.RejectedCount())
	require.Len(t, week.Days[models.Monday], 1)
	assert.Equal(t, "ann", week.Days[models.Monday][0].OwnerID)
}

func TestBuildWeekDayFilter(t *testing.T) {
	records := []models.ShiftRecord{
		rec(models.Monday, "09:00", "10:00", "ann"),
		rec(models.Tuesday, "09:00", "10:00", "bob"),
		rec(models.Friday, "13:00", "15:00", "cyd"),
	}
	week, _ := BuildWeek(records, string(models.Tuesday), 1.0, DefaultOptions())
	assert.Empty(t, week.Days[models.Monday])
	assert.Empty(t, week.Days[models.Friday])
	require.Len(t, week.Days[models.Tuesday], 1)
	assert.Equal(t, "bob", week.Days[models.Tuesday][0].OwnerID)
}

// The filtered day's intervals alone drive the scale.
func TestBuildWeekDayFilterScopesScale(t *testing.T) {
	records := []models.ShiftRecord{
		rec(models.Monday, "09:00", "09:15", "ann"), // short shift, Monday only
		rec(models.Tuesday, "09:00", "10:00", "bob"),
	}
	all, _ := BuildWeek(records, DayFilterAll, 1.0, DefaultOptions())
	tue, _ := BuildWeek(records, string(models.Tuesday), 1.0, DefaultOptions())
	assert.Greater(t, all.Scale.PixelsPerHour, tue.Scale.PixelsPerHour)
}

func TestBuildWeekDeterministicOverPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var records []models.ShiftRecord
	for i := 0; i < 24; i++ {
		day := models.WeekDays[rng.Intn(len(models.WeekDays))]
		start := rng.Intn(1300)
		records = append(records, rec(day, clock(start), clock(start+10+rng.Intn(130)), fmt.Sprintf("p%02d", i)))
	}
	reference, refDiag := BuildWeek(records, DayFilterAll, 1.0, DefaultOptions())

	for trial := 0; trial < 10; trial++ {
		shuffled := make([]models.ShiftRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		week, diag := BuildWeek(shuffled, DayFilterAll, 1.0, DefaultOptions())
		assert.Equal(t, reference, week)
		assert.Equal(t, refDiag.RejectedCount(), diag.RejectedCount())
	}
}

// Feeding the engine its own round-tripped output changes nothing.
func TestBuildWeekIdempotent(t *testing.T) {
	records := []models.ShiftRecord{
		rec(models.Monday, "09:00", "10:00", "ann"),
		rec(models.Monday, "09:30", "10:30", "bob"),
		rec(models.Thursday, "13:15", "13:45", "cyd"),
	}
	first, diag := BuildWeek(records, DayFilterAll, 1.0, DefaultOptions())
	require.Equal(t, 0, diag.RejectedCount())

	var roundTripped []models.ShiftRecord
	for _, day := range models.WeekDays {
		for _, p := range first.Days[day] {
			roundTripped = append(roundTripped, models.ShiftRecord{
				OwnerID: p.OwnerID,
				Day:     p.Day,
				Start:   clock(p.StartMinute),
				End:     clock(p.EndMinute),
				Label:   p.Label,
			})
		}
	}
	second, diag := BuildWeek(roundTripped, DayFilterAll, 1.0, DefaultOptions())
	assert.Equal(t, 0, diag.RejectedCount())
	assert.Equal(t, first, second)
}

// Full-pipeline invariant sweep on random weeks.
func TestBuildWeekInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 40; trial++ {
		n := rng.Intn(40)
		var records []models.ShiftRecord
		for i := 0; i < n; i++ {
			day := models.WeekDays[rng.Intn(len(models.WeekDays))]
			start := rng.Intn(1350)
			records = append(records, rec(day, clock(start), clock(min(start+5+rng.Intn(200), 1439)), fmt.Sprintf("p%02d", i)))
		}

		week, diag := BuildWeek(records, DayFilterAll, 1.0, DefaultOptions())

		total := 0
		for _, day := range models.WeekDays {
			placed := week.Days[day]
			total += len(placed)
			for i, a := range placed {
				assert.Less(t, a.ColumnIndex, a.ColumnCount)
				for _, b := range placed[i+1:] {
					sameColumn := a.ColumnIndex == b.ColumnIndex
					overlap := a.StartMinute < b.EndMinute && b.StartMinute < a.EndMinute
					if sameColumn && overlap {
						t.Fatalf("same column overlap on %s: %+v vs %+v", day, a, b)
					}
				}
			}
		}
		assert.Equal(t, len(records), total+diag.RejectedCount(),
			"every record is either placed or rejected")
	}
}

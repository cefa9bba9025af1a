package layout

import "deptdesk/models"

// DayFilterAll selects all five weekdays.
const DayFilterAll = "All"

// PlacedShift is one fully laid-out shift, ready for the rendering layer.
type PlacedShift struct {
	OwnerID     string            `json:"ownerId"`
	Label       models.ShiftLabel `json:"label"`
	Day         models.Day        `json:"day"`
	StartMinute int               `json:"startMinute"`
	EndMinute   int               `json:"endMinute"`
	ColumnIndex int               `json:"columnIndex"`
	ColumnCount int               `json:"columnCount"`
	Box         Box               `json:"box"`
	FontTier    int               `json:"fontTier"`
}

// WeekLayout is the engine's output: placed shifts per day plus the shared
// scale for the whole visible set.
type WeekLayout struct {
	Days  map[models.Day][]PlacedShift `json:"days"`
	Scale ScaleConfig                  `json:"scale"`
}

// BuildWeek runs the full pipeline: normalize, filter to the requested
// day(s), cluster per day, assign columns, derive the shared scale, and
// project every assignment to a rectangle. Malformed records are excluded
// and reported in the returned Diagnostics; an empty visible set yields
// empty per-day slices and a default scale.
func BuildWeek(records []models.ShiftRecord, dayFilter string, zoom float64, opts Options) (WeekLayout, Diagnostics) {
	intervals, diag := Normalize(records)

	visible := intervals
	if dayFilter != "" && dayFilter != DayFilterAll {
		visible = visible[:0:0]
		for _, iv := range intervals {
			if iv.Day == models.Day(dayFilter) {
				visible = append(visible, iv)
			}
		}
	}

	minStart, maxEnd := VisibleBounds(visible, opts)
	scale := Scale(minStart, maxEnd, visible, zoom, opts)

	out := WeekLayout{
		Days:  make(map[models.Day][]PlacedShift, len(models.WeekDays)),
		Scale: scale,
	}
	for _, day := range models.WeekDays {
		out.Days[day] = []PlacedShift{}
	}

	byDay := make(map[models.Day][]TimeInterval)
	for _, iv := range visible {
		byDay[iv.Day] = append(byDay[iv.Day], iv)
	}

	for _, day := range models.WeekDays {
		for _, cluster := range GroupOverlaps(byDay[day]) {
			cluster := cluster
			for _, a := range AssignColumns(&cluster) {
				out.Days[day] = append(out.Days[day], PlacedShift{
					OwnerID:     a.Interval.OwnerID,
					Label:       a.Interval.Label,
					Day:         day,
					StartMinute: a.Interval.StartMinute,
					EndMinute:   a.Interval.EndMinute,
					ColumnIndex: a.ColumnIndex,
					ColumnCount: a.ColumnCount,
					Box:         Project(a, scale, opts),
					FontTier:    FontTier(a.Interval.DurationMinutes(), scale.PixelsPerHour),
				})
			}
		}
	}
	return out, diag
}

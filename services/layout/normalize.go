package layout

import (
	"fmt"
	"strconv"
	"strings"

	"deptdesk/models"
)

// TimeInterval is a canonical minute-offset shift. StartMinute < EndMinute,
// both within a single day.
type TimeInterval struct {
	Day         models.Day        `json:"day"`
	StartMinute int               `json:"startMinute"`
	EndMinute   int               `json:"endMinute"`
	OwnerID     string            `json:"ownerId"`
	Label       models.ShiftLabel `json:"label"`
}

// DurationMinutes returns the interval length in minutes.
func (iv TimeInterval) DurationMinutes() int {
	return iv.EndMinute - iv.StartMinute
}

// Overlaps reports whether two intervals share any open time. Touching
// intervals (end == other start) do not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.StartMinute < other.EndMinute && other.StartMinute < iv.EndMinute
}

// RejectedRecord pairs a discarded source record with the reason it was
// discarded.
type RejectedRecord struct {
	Record models.ShiftRecord `json:"record"`
	Reason string             `json:"reason"`
}

// Diagnostics accumulates records excluded during normalization. Malformed
// source rows are expected; they are counted here and never abort a layout.
type Diagnostics struct {
	Rejected []RejectedRecord `json:"rejected,omitempty"`
}

// RejectedCount returns how many input records were excluded.
func (d Diagnostics) RejectedCount() int {
	return len(d.Rejected)
}

func (d *Diagnostics) reject(rec models.ShiftRecord, reason string) {
	d.Rejected = append(d.Rejected, RejectedRecord{Record: rec, Reason: reason})
}

// parseClock parses "HH:MM" into minutes from midnight.
func parseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("time %q is not HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("time %q has a bad hour: %w", s, err)
	}
	min, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("time %q has a bad minute: %w", s, err)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, fmt.Errorf("time %q is out of range", s)
	}
	return hour*60 + min, nil
}

// Normalize converts raw shift records into canonical intervals. Records
// with an unknown day code, an unparseable time, or start >= end are
// excluded and reported through the returned Diagnostics.
func Normalize(records []models.ShiftRecord) ([]TimeInterval, Diagnostics) {
	intervals := make([]TimeInterval, 0, len(records))
	var diag Diagnostics

	for _, rec := range records {
		if !rec.Day.Valid() {
			diag.reject(rec, fmt.Sprintf("unknown day code %q", rec.Day))
			continue
		}
		start, err := parseClock(rec.Start)
		if err != nil {
			diag.reject(rec, "start: "+err.Error())
			continue
		}
		end, err := parseClock(rec.End)
		if err != nil {
			diag.reject(rec, "end: "+err.Error())
			continue
		}
		if start >= end {
			diag.reject(rec, fmt.Sprintf("start %s is not before end %s", rec.Start, rec.End))
			continue
		}
		intervals = append(intervals, TimeInterval{
			Day:         rec.Day,
			StartMinute: start,
			EndMinute:   end,
			OwnerID:     rec.OwnerID,
			Label:       rec.Label,
		})
	}
	return intervals, diag
}

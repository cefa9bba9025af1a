package layout

import "sort"

// Cluster is a maximal run of mutually connected overlapping intervals on
// one day. Every member transitively overlaps every other member, and no
// outside interval overlaps any member.
type Cluster struct {
	Intervals   []TimeInterval
	ColumnCount int // set by AssignColumns
}

// sortIntervals puts a day's intervals into the canonical order: start
// ascending, then end ascending, then owner. The full tie-break makes the
// pipeline deterministic under any input permutation.
func sortIntervals(intervals []TimeInterval) {
	sort.Slice(intervals, func(i, j int) bool {
		a, b := intervals[i], intervals[j]
		if a.StartMinute != b.StartMinute {
			return a.StartMinute < b.StartMinute
		}
		if a.EndMinute != b.EndMinute {
			return a.EndMinute < b.EndMinute
		}
		return a.OwnerID < b.OwnerID
	})
}

// GroupOverlaps partitions one day's intervals into overlap clusters.
// A new cluster starts whenever the next interval begins at or after
// everything open so far has closed, so back-to-back shifts that merely
// touch land in separate clusters.
func GroupOverlaps(intervals []TimeInterval) []Cluster {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]TimeInterval, len(intervals))
	copy(sorted, intervals)
	sortIntervals(sorted)

	var clusters []Cluster
	current := Cluster{Intervals: []TimeInterval{sorted[0]}}
	runningMaxEnd := sorted[0].EndMinute

	for _, iv := range sorted[1:] {
		if iv.StartMinute >= runningMaxEnd {
			clusters = append(clusters, current)
			current = Cluster{Intervals: []TimeInterval{iv}}
			runningMaxEnd = iv.EndMinute
			continue
		}
		current.Intervals = append(current.Intervals, iv)
		if iv.EndMinute > runningMaxEnd {
			runningMaxEnd = iv.EndMinute
		}
	}
	return append(clusters, current)
}

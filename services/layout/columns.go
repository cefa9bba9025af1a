package layout

// Assignment places one interval in a rendering column within its cluster.
type Assignment struct {
	Interval    TimeInterval
	ColumnIndex int
	ColumnCount int // the owning cluster's count, uniform across siblings
}

// AssignColumns greedily packs a cluster's intervals into columns so that
// no two intervals in the same column overlap. Earliest-start greedy
// assignment over start-sorted intervals uses exactly the minimum number
// of columns (the minimum-platforms bound). The cluster's ColumnCount is
// stamped onto every assignment so sibling widths come out equal.
func AssignColumns(c *Cluster) []Assignment {
	assignments := make([]Assignment, len(c.Intervals))
	var columnEnd []int // end minute of the last interval in each column

	for i, iv := range c.Intervals {
		col := -1
		for j, end := range columnEnd {
			if end <= iv.StartMinute {
				col = j
				break
			}
		}
		if col == -1 {
			col = len(columnEnd)
			columnEnd = append(columnEnd, iv.EndMinute)
		} else {
			columnEnd[col] = iv.EndMinute
		}
		assignments[i] = Assignment{Interval: iv, ColumnIndex: col}
	}

	c.ColumnCount = len(columnEnd)
	for i := range assignments {
		assignments[i].ColumnCount = c.ColumnCount
	}
	return assignments
}

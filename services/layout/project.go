package layout

// Box is a renderable rectangle in percent coordinates. Top and Height are
// relative to the visible time window; Left and Width to the day track.
type Box struct {
	TopPct    float64 `json:"topPct"`
	HeightPct float64 `json:"heightPct"`
	LeftPct   float64 `json:"leftPct"`
	WidthPct  float64 `json:"widthPct"`
}

// Project maps a column assignment onto its rectangle. Pure arithmetic:
// the vertical axis is linear in minutes over the visible window, the
// horizontal track splits evenly among the cluster's columns with a fixed
// gap between siblings.
func Project(a Assignment, sc ScaleConfig, opts Options) Box {
	total := float64(sc.MaxEnd - sc.MinStart)
	top := float64(a.Interval.StartMinute-sc.MinStart) / total * 100
	height := float64(a.Interval.DurationMinutes()) / total * 100
	if height < opts.MinHeightPct {
		height = opts.MinHeightPct
	}

	count := float64(a.ColumnCount)
	width := (100 - float64(a.ColumnCount-1)*opts.ColumnGapPct) / count
	left := float64(a.ColumnIndex)*(100/count) + float64(a.ColumnIndex)*opts.ColumnGapPct

	return Box{TopPct: top, HeightPct: height, LeftPct: left, WidthPct: width}
}

package models

// Day is a single-letter weekday code as used in the shift source data.
type Day string

const (
	Monday    Day = "M"
	Tuesday   Day = "T"
	Wednesday Day = "W"
	Thursday  Day = "R"
	Friday    Day = "F"
)

// WeekDays lists the five recognized day codes in display order.
var WeekDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid reports whether d is one of the five recognized day codes.
func (d Day) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// ShiftLabel carries display metadata attached to a shift. It is inert
// payload as far as the layout engine is concerned.
type ShiftLabel struct {
	Name      string   `bson:"name" json:"name"`
	JobTitle  string   `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	Buildings []string `bson:"buildings,omitempty" json:"buildings,omitempty"`
}

// ShiftRecord is a raw work-shift document as ingested from the source
// spreadsheets. Start and End are "HH:MM" strings; malformed values are
// expected and filtered out at layout time, never at write time.
type ShiftRecord struct {
	ID      string     `bson:"id" json:"id"`
	OwnerID string     `bson:"ownerId" json:"ownerId"`
	Day     Day        `bson:"day" json:"day"`
	Start   string     `bson:"start" json:"start"` // e.g. "09:00"
	End     string     `bson:"end" json:"end"`     // e.g. "17:30"
	Label   ShiftLabel `bson:"label" json:"label"`
}

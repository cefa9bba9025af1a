package models

import "time"

// Activity event kinds.
const (
	ActivityView   = "view"
	ActivityFilter = "filter"
	ActivityExport = "export"
)

// ActivityEvent records that a schedule was viewed, filtered, or exported.
// Events are append-only telemetry, independent of layout correctness.
type ActivityEvent struct {
	ID        string    `bson:"id" json:"id"`
	Kind      string    `bson:"kind" json:"kind"` // view, filter, export
	Actor     string    `bson:"actor,omitempty" json:"actor,omitempty"`
	Detail    string    `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

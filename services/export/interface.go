// Package export defines the collaborator surface for schedule snapshot
// exports. The actual spreadsheet/PDF/image rendering lives outside this
// service; the engine only hands over a reference to a rendered snapshot.
package export

import "context"

// SnapshotRequest references a rendered schedule snapshot to be exported.
type SnapshotRequest struct {
	Format    string `json:"format" binding:"required"` // csv, xlsx, pdf, png
	DayFilter string `json:"dayFilter,omitempty"`
	Actor     string `json:"actor,omitempty"`
	Snapshot  string `json:"snapshot,omitempty"` // opaque reference supplied by the rendering layer
}

// ExportService consumes rendered snapshots.
type ExportService interface {
	ExportSnapshot(ctx context.Context, req SnapshotRequest) (string, error)
}

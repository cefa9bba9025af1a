package export

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deptdesk/models"
	"deptdesk/services/activity"
	"deptdesk/utils"
)

// DefaultExportService acknowledges a snapshot hand-off and records the
// export in the activity log. Rendering itself is the collaborator's job.
type DefaultExportService struct {
	Activity activity.ActivityService
}

func (s *DefaultExportService) ExportSnapshot(ctx context.Context, req SnapshotRequest) (string, error) {
	logger := utils.GetLogger()

	switch req.Format {
	case "csv", "xlsx", "pdf", "png":
	default:
		return "", fmt.Errorf("unsupported export format %q", req.Format)
	}

	exportID := uuid.New().String()
	logger.Info("schedule snapshot handed to exporter",
		zap.String("exportId", exportID),
		zap.String("format", req.Format),
		zap.String("dayFilter", req.DayFilter))

	if s.Activity != nil {
		s.Activity.Record(ctx, models.ActivityExport, req.Actor, req.Format)
	}
	return exportID, nil
}

package activity

import (
	"context"

	activityRepo "deptdesk/database/repository/activity"
	"deptdesk/models"
)

// ActivityService records that a schedule was viewed, filtered, or
// exported. Telemetry is best-effort: failures are logged, never surfaced
// to the caller.
type ActivityService interface {
	Record(ctx context.Context, kind, actor, detail string)
	ListRecent(ctx context.Context, limit int64) ([]models.ActivityEvent, error)
}

// DefaultActivityService is the production implementation.
type DefaultActivityService struct {
	Repo activityRepo.ActivityRepository
}

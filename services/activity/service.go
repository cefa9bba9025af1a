package activity

import (
	"context"

	"go.uber.org/zap"

	"deptdesk/models"
	"deptdesk/utils"
)

func (s *DefaultActivityService) Record(ctx context.Context, kind, actor, detail string) {
	logger := utils.GetLogger()

	event := models.ActivityEvent{
		Kind:   kind,
		Actor:  actor,
		Detail: detail,
	}
	if err := s.Repo.Insert(ctx, event); err != nil {
		logger.Warn("failed to record activity event",
			zap.String("kind", kind),
			zap.Error(err))
		return
	}
	logger.Debug("activity event recorded",
		zap.String("kind", kind),
		zap.String("actor", actor),
		zap.String("detail", detail))
}

func (s *DefaultActivityService) ListRecent(ctx context.Context, limit int64) ([]models.ActivityEvent, error) {
	return s.Repo.ListRecent(ctx, limit)
}

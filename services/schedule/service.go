package schedule

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"deptdesk/models"
	"deptdesk/services/layout"
	"deptdesk/utils"
)

// BuildWeek fetches the shift records, applies the request filters, and
// runs the layout pipeline, memoized in Redis when a cache is configured.
func (s *DefaultScheduleService) BuildWeek(ctx context.Context, req WeekRequest) (*WeekResponse, error) {
	logger := utils.GetLogger()

	if req.DayFilter == "" {
		req.DayFilter = layout.DayFilterAll
	}
	if req.Zoom == 0 {
		req.Zoom = 1.0
	}

	records, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift records: %w", err)
	}
	records = filterRecords(records, req)

	if cached := s.cacheLookup(ctx, records, req); cached != nil {
		s.recordActivity(ctx, req)
		return cached, nil
	}

	resp := s.BuildWeekFromRecords(ctx, records, req.DayFilter, req.Zoom)
	if resp.Rejected != nil {
		logger.Warn("shift records excluded from layout",
			zap.Int("rejected", len(resp.Rejected)),
			zap.String("dayFilter", req.DayFilter))
	}

	s.cacheStore(ctx, records, req, resp)
	s.recordActivity(ctx, req)
	return resp, nil
}

// BuildWeekFromRecords runs the engine statelessly over caller-supplied
// records. Never fails: malformed records surface in Rejected.
func (s *DefaultScheduleService) BuildWeekFromRecords(ctx context.Context, records []models.ShiftRecord, dayFilter string, zoom float64) *WeekResponse {
	opts := s.Options
	if opts == (layout.Options{}) {
		opts = layout.DefaultOptions()
	}
	week, diag := layout.BuildWeek(records, dayFilter, zoom, opts)
	return &WeekResponse{
		Days:     week.Days,
		Scale:    week.Scale,
		Rejected: diag.Rejected,
	}
}

func (s *DefaultScheduleService) AddShifts(ctx context.Context, shifts []models.ShiftRecord) ([]string, error) {
	for i, shift := range shifts {
		if shift.OwnerID == "" {
			return nil, fmt.Errorf("shift %d has no owner", i)
		}
	}
	return s.Repo.CreateMany(ctx, shifts)
}

func (s *DefaultScheduleService) GetShiftsByOwner(ctx context.Context, ownerID string) ([]models.ShiftRecord, error) {
	return s.Repo.GetByOwnerID(ctx, ownerID)
}

func (s *DefaultScheduleService) DeleteShift(ctx context.Context, shiftID string) error {
	return s.Repo.DeleteByID(ctx, shiftID)
}

func (s *DefaultScheduleService) recordActivity(ctx context.Context, req WeekRequest) {
	if s.Activity == nil {
		return
	}
	kind := models.ActivityView
	detail := "day=" + req.DayFilter
	if req.Owner != "" || req.Building != "" || req.JobTitle != "" {
		kind = models.ActivityFilter
		detail += fmt.Sprintf(" owner=%s building=%s jobTitle=%s", req.Owner, req.Building, req.JobTitle)
	}
	s.Activity.Record(ctx, kind, req.Actor, detail)
}

// filterRecords applies the upstream owner/building/job-title filters. The
// layout engine itself only ever sees the day filter.
func filterRecords(records []models.ShiftRecord, req WeekRequest) []models.ShiftRecord {
	if req.Owner == "" && req.Building == "" && req.JobTitle == "" {
		return records
	}
	filtered := make([]models.ShiftRecord, 0, len(records))
	for _, rec := range records {
		if req.Owner != "" && rec.OwnerID != req.Owner {
			continue
		}
		if req.JobTitle != "" && !strings.EqualFold(rec.Label.JobTitle, req.JobTitle) {
			continue
		}
		if req.Building != "" && !hasBuilding(rec.Label.Buildings, req.Building) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func hasBuilding(buildings []string, want string) bool {
	for _, b := range buildings {
		if strings.EqualFold(b, want) {
			return true
		}
	}
	return false
}

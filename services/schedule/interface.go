package schedule

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	shiftRepo "deptdesk/database/repository/shift"
	"deptdesk/models"
	"deptdesk/services/activity"
	"deptdesk/services/layout"
)

// WeekRequest selects what to lay out. Owner, Building, and JobTitle narrow
// the record set before the engine runs; DayFilter and Zoom feed the engine.
type WeekRequest struct {
	DayFilter string
	Zoom      float64
	Owner     string
	Building  string
	JobTitle  string
	Actor     string
}

// WeekResponse is the wire shape returned to the rendering layer.
type WeekResponse struct {
	Days     map[models.Day][]layout.PlacedShift `json:"days"`
	Scale    layout.ScaleConfig                  `json:"scale"`
	Rejected []layout.RejectedRecord             `json:"rejected,omitempty"`
	Cached   bool                                `json:"cached"`
}

// ScheduleService computes week layouts from stored or caller-supplied
// shift records.
type ScheduleService interface {
	BuildWeek(ctx context.Context, req WeekRequest) (*WeekResponse, error)
	BuildWeekFromRecords(ctx context.Context, records []models.ShiftRecord, dayFilter string, zoom float64) *WeekResponse
	AddShifts(ctx context.Context, shifts []models.ShiftRecord) ([]string, error)
	GetShiftsByOwner(ctx context.Context, ownerID string) ([]models.ShiftRecord, error)
	DeleteShift(ctx context.Context, shiftID string) error
}

// DefaultScheduleService is the production implementation. Cache may be nil,
// in which case every request recomputes.
type DefaultScheduleService struct {
	Repo     shiftRepo.ShiftRepository
	Cache    *redis.Client
	CacheTTL time.Duration
	Activity activity.ActivityService
	Options  layout.Options
}

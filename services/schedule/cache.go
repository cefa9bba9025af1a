package schedule

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"deptdesk/models"
	"deptdesk/utils"
)

// cacheKey hashes the full pipeline input: the filtered record set plus
// every knob that changes the output. Any input change yields a new key,
// so invalidation is wholesale.
func (s *DefaultScheduleService) cacheKey(records []models.ShiftRecord, req WeekRequest) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(records)
	_ = enc.Encode(s.Options)
	fmt.Fprintf(h, "%s|%.3f", req.DayFilter, req.Zoom)
	return "layout:week:" + hex.EncodeToString(h.Sum(nil))
}

// cacheLookup returns a memoized response, or nil on miss or cache error.
// Cache failures degrade to recompute, never to a request failure.
func (s *DefaultScheduleService) cacheLookup(ctx context.Context, records []models.ShiftRecord, req WeekRequest) *WeekResponse {
	if s.Cache == nil {
		return nil
	}
	logger := utils.GetLogger()

	raw, err := s.Cache.Get(ctx, s.cacheKey(records, req)).Bytes()
	if err != nil {
		return nil
	}
	var resp WeekResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		logger.Warn("discarding undecodable cached layout", zap.Error(err))
		return nil
	}
	resp.Cached = true
	return &resp
}

func (s *DefaultScheduleService) cacheStore(ctx context.Context, records []models.ShiftRecord, req WeekRequest, resp *WeekResponse) {
	if s.Cache == nil {
		return
	}
	logger := utils.GetLogger()

	raw, err := json.Marshal(resp)
	if err != nil {
		logger.Warn("failed to encode layout for cache", zap.Error(err))
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := s.Cache.Set(ctx, s.cacheKey(records, req), raw, ttl).Err(); err != nil {
		logger.Warn("failed to cache layout", zap.Error(err))
	}
}

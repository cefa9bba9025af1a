package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"deptdesk/models"
	"deptdesk/services/layout"
	"deptdesk/services/schedule"
	"deptdesk/utils"
)

// ScheduleHandler serves week-layout computations.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Logger  *zap.Logger
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Logger: logger}
}

func parseZoom(c *gin.Context) float64 {
	raw := c.Query("zoom")
	if raw == "" {
		return 1.0
	}
	zoom, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Out-of-range and malformed zoom are clamped, not rejected.
		return 1.0
	}
	return zoom
}

// GetWeekHandler computes the week layout from stored shift records.
func (h *ScheduleHandler) GetWeekHandler(c *gin.Context) {
	day := c.DefaultQuery("day", layout.DayFilterAll)
	if day != layout.DayFilterAll && !models.Day(day).Valid() {
		utils.JSONError(c, http.StatusBadRequest, "Invalid day filter", "day must be All, M, T, W, R, or F")
		return
	}

	req := schedule.WeekRequest{
		DayFilter: day,
		Zoom:      parseZoom(c),
		Owner:     c.Query("owner"),
		Building:  c.Query("building"),
		JobTitle:  c.Query("jobTitle"),
		Actor:     c.GetHeader("X-Actor"),
	}

	resp, err := h.Service.BuildWeek(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("Failed to build week layout", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build week layout", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuildLayoutRequest carries caller-supplied records for a stateless layout.
type BuildLayoutRequest struct {
	Records   []models.ShiftRecord `json:"records" binding:"required"`
	DayFilter string               `json:"dayFilter"`
	Zoom      float64              `json:"zoom"`
}

// BuildLayoutHandler runs the layout engine over records in the request
// body, without touching the store.
func (h *ScheduleHandler) BuildLayoutHandler(c *gin.Context) {
	var req BuildLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid layout request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if req.DayFilter == "" {
		req.DayFilter = layout.DayFilterAll
	}
	if req.Zoom == 0 {
		req.Zoom = 1.0
	}

	resp := h.Service.BuildWeekFromRecords(c.Request.Context(), req.Records, req.DayFilter, req.Zoom)
	c.JSON(http.StatusOK, resp)
}

// AddShiftsRequest defines the payload for bulk shift creation.
type AddShiftsRequest struct {
	Shifts []models.ShiftRecord `json:"shifts" binding:"required"`
}

func (h *ScheduleHandler) AddShiftsHandler(c *gin.Context) {
	var req AddShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	ids, err := h.Service.AddShifts(c.Request.Context(), req.Shifts)
	if err != nil {
		h.Logger.Error("Failed to add shifts", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add shifts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

func (h *ScheduleHandler) GetShiftsByOwnerHandler(c *gin.Context) {
	ownerID := c.Param("ownerID")
	if ownerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing owner ID in path", "")
		return
	}

	shifts, err := h.Service.GetShiftsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch shifts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

func (h *ScheduleHandler) DeleteShiftHandler(c *gin.Context) {
	shiftID := c.Param("id")
	if shiftID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing shift ID in path", "")
		return
	}

	if err := h.Service.DeleteShift(c.Request.Context(), shiftID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete shift", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}

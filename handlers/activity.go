package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deptdesk/services/activity"
	"deptdesk/utils"
)

// ActivityHandler serves the telemetry listing endpoint.
type ActivityHandler struct {
	Service activity.ActivityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc activity.ActivityService) *ActivityHandler {
	return &ActivityHandler{Service: svc}
}

func (h *ActivityHandler) ListActivityHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	events, err := h.Service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list activity", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

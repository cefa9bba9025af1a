package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"deptdesk/services/export"
	"deptdesk/utils"
)

// ExportHandler hands rendered schedule snapshots to the export collaborator.
type ExportHandler struct {
	Service export.ExportService
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(svc export.ExportService) *ExportHandler {
	return &ExportHandler{Service: svc}
}

func (h *ExportHandler) ExportSnapshotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req export.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if req.Actor == "" {
		req.Actor = c.GetHeader("X-Actor")
	}

	exportID, err := h.Service.ExportSnapshot(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to export snapshot", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Failed to export snapshot", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"exportId": exportID})
}

package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"deptdesk/handlers"
	"deptdesk/utils"
)

// RegisterScheduleRoutes registers the week-layout and shift endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/week", hb.GetWeekHandler)
		api.POST("/layout", hb.BuildLayoutHandler)
	}

	shifts := r.Group("/api/shifts")
	{
		shifts.POST("", hb.AddShiftsHandler)
		shifts.GET("/owner/:ownerID", hb.GetShiftsByOwnerHandler)
		shifts.DELETE("/:id", hb.DeleteShiftHandler)
	}
}

// RegisterPersonRoutes registers the personnel directory endpoints.
func RegisterPersonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/people")
	{
		api.POST("", hb.CreatePersonHandler)
		api.GET("", hb.ListPeopleHandler)
		api.GET("/:id", hb.GetPersonByIDHandler)
		api.PUT("/:id", hb.UpdatePersonHandler)
		api.DELETE("/:id", hb.DeletePersonHandler)
	}
}

// RegisterActivityRoutes registers the telemetry endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/activity")
	{
		api.GET("", hb.ListActivityHandler)
	}
}

// RegisterExportRoutes registers the snapshot export endpoint.
func RegisterExportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/export")
	{
		api.POST("/snapshot", hb.ExportSnapshotHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and all route groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Actor"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterPersonRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterExportRoutes(r, hb)
}

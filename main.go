// File: deptdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"deptdesk/config"
	"deptdesk/database"
	activityRepo "deptdesk/database/repository/activity"
	personRepo "deptdesk/database/repository/person"
	shiftRepo "deptdesk/database/repository/shift"
	"deptdesk/handlers"
	"deptdesk/middleware"
	"deptdesk/routes"
	"deptdesk/services/activity"
	"deptdesk/services/export"
	"deptdesk/services/layout"
	"deptdesk/services/person"
	"deptdesk/services/schedule"
	"deptdesk/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLayoutCache()
	utils.StartHealthMonitor(utils.GetLayoutCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	shifts := shiftRepo.NewMongoShiftRepo()
	people := personRepo.NewMongoPersonRepo()
	activities := activityRepo.NewMongoActivityRepo()

	// services.
	activityService := &activity.DefaultActivityService{
		Repo: activities,
	}

	scheduleService := &schedule.DefaultScheduleService{
		Repo:     shifts,
		Cache:    utils.GetLayoutCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.LayoutCacheTTL) * time.Second,
		Activity: activityService,
		Options:  layout.DefaultOptions(),
	}

	personService := &person.DefaultPersonService{
		Repo:   people,
		Shifts: shifts,
	}

	exportService := &export.DefaultExportService{
		Activity: activityService,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)
	personHandler := handlers.NewPersonHandler(personService)
	activityHandler := handlers.NewActivityHandler(activityService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Schedule endpoints.
		GetWeekHandler:          scheduleHandler.GetWeekHandler,
		BuildLayoutHandler:      scheduleHandler.BuildLayoutHandler,
		AddShiftsHandler:        scheduleHandler.AddShiftsHandler,
		GetShiftsByOwnerHandler: scheduleHandler.GetShiftsByOwnerHandler,
		DeleteShiftHandler:      scheduleHandler.DeleteShiftHandler,

		// Personnel directory endpoints.
		CreatePersonHandler:  personHandler.CreatePersonHandler,
		GetPersonByIDHandler: personHandler.GetPersonByIDHandler,
		ListPeopleHandler:    personHandler.ListPeopleHandler,
		UpdatePersonHandler:  personHandler.UpdatePersonHandler,
		DeletePersonHandler:  personHandler.DeletePersonHandler,

		// Telemetry endpoints.
		ListActivityHandler: activityHandler.ListActivityHandler,

		// Export endpoints.
		ExportSnapshotHandler: exportHandler.ExportSnapshotHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

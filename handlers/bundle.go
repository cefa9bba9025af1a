package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler the router needs.
type HandlerBundle struct {
	// Schedule endpoints.
	GetWeekHandler          gin.HandlerFunc
	BuildLayoutHandler      gin.HandlerFunc
	AddShiftsHandler        gin.HandlerFunc
	GetShiftsByOwnerHandler gin.HandlerFunc
	DeleteShiftHandler      gin.HandlerFunc

	// Personnel directory endpoints.
	CreatePersonHandler  gin.HandlerFunc
	GetPersonByIDHandler gin.HandlerFunc
	ListPeopleHandler    gin.HandlerFunc
	UpdatePersonHandler  gin.HandlerFunc
	DeletePersonHandler  gin.HandlerFunc

	// Telemetry endpoints.
	ListActivityHandler gin.HandlerFunc

	// Export endpoints.
	ExportSnapshotHandler gin.HandlerFunc
}

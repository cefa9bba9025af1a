// File: database/repository/shift/interface.go
package shiftRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"deptdesk/config"
	"deptdesk/database"
	"deptdesk/models"
)

// ShiftRepository is the directory/schedule data layer: it supplies the raw
// work-shift records the layout engine consumes.
type ShiftRepository interface {
	CreateMany(ctx context.Context, shifts []models.ShiftRecord) ([]string, error)
	GetAll(ctx context.Context) ([]models.ShiftRecord, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]models.ShiftRecord, error)
	GetByDay(ctx context.Context, day models.Day) ([]models.ShiftRecord, error)
	DeleteByID(ctx context.Context, shiftID string) error
	DeleteByOwnerID(ctx context.Context, ownerID string) (int64, error)
}

type mongoShiftRepo struct {
	coll *mongo.Collection
}

// NewMongoShiftRepo constructs a new MongoDB ShiftRepository.
func NewMongoShiftRepo() ShiftRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoShiftRepo{
		coll: db.Collection("shifts"),
	}
}

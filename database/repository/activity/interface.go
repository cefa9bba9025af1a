// File: database/repository/activity/interface.go
package activityRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"deptdesk/config"
	"deptdesk/database"
	"deptdesk/models"
)

// ActivityRepository stores append-only telemetry events.
type ActivityRepository interface {
	Insert(ctx context.Context, event models.ActivityEvent) error
	ListRecent(ctx context.Context, limit int64) ([]models.ActivityEvent, error)
}

type mongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo constructs a new MongoDB ActivityRepository.
func NewMongoActivityRepo() ActivityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoActivityRepo{
		coll: db.Collection("activity"),
	}
}

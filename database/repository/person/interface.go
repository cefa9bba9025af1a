// File: database/repository/person/interface.go
package personRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"deptdesk/config"
	"deptdesk/database"
	"deptdesk/models"
)

// PersonFilter narrows directory listings. Zero values match everything.
type PersonFilter struct {
	Role     string
	Building string
	JobTitle string
}

type PersonRepository interface {
	Create(ctx context.Context, person models.Person) (string, error)
	GetByID(ctx context.Context, personID string) (*models.Person, error)
	List(ctx context.Context, filter PersonFilter) ([]models.Person, error)
	Update(ctx context.Context, personID string, updates map[string]interface{}) (*models.Person, error)
	DeleteByID(ctx context.Context, personID string) error
}

type mongoPersonRepo struct {
	coll *mongo.Collection
}

// NewMongoPersonRepo constructs a new MongoDB PersonRepository.
func NewMongoPersonRepo() PersonRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoPersonRepo{
		coll: db.Collection("people"),
	}
}

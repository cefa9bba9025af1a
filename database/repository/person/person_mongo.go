package personRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"deptdesk/models"
)

func (r *mongoPersonRepo) Create(ctx context.Context, person models.Person) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, person); err != nil {
		return "", err
	}
	return person.ID, nil
}

func (r *mongoPersonRepo) GetByID(ctx context.Context, personID string) (*models.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var person models.Person
	err := r.coll.FindOne(ctx, bson.M{"id": personID}).Decode(&person)
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *mongoPersonRepo) List(ctx context.Context, filter PersonFilter) ([]models.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.Building != "" {
		query["buildings"] = filter.Building
	}
	if filter.JobTitle != "" {
		query["jobTitle"] = filter.JobTitle
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var people []models.Person
	if err := cursor.All(ctx, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (r *mongoPersonRepo) Update(ctx context.Context, personID string, updates map[string]interface{}) (*models.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{}
	for k, v := range updates {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Person
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": personID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoPersonRepo) DeleteByID(ctx context.Context, personID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": personID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

package shiftRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"deptdesk/models"
)

func (r *mongoShiftRepo) CreateMany(ctx context.Context, shifts []models.ShiftRecord) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(shifts) == 0 {
		return nil, errors.New("no shift records to insert")
	}

	docs := make([]interface{}, len(shifts))
	ids := make([]string, len(shifts))
	for i, shift := range shifts {
		if shift.ID == "" {
			shift.ID = uuid.New().String()
		}
		ids[i] = shift.ID
		docs[i] = shift
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *mongoShiftRepo) GetAll(ctx context.Context) ([]models.ShiftRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shifts []models.ShiftRecord
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *mongoShiftRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]models.ShiftRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shifts []models.ShiftRecord
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *mongoShiftRepo) GetByDay(ctx context.Context, day models.Day) ([]models.ShiftRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"day": day})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shifts []models.ShiftRecord
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *mongoShiftRepo) DeleteByID(ctx context.Context, shiftID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": shiftID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoShiftRepo) DeleteByOwnerID(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/Shubham1613/FastAPI-Mongo/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClockInRepository implements ClockInRepository using MongoDB.
type MongoClockInRepository struct {
	collection *mongo.Collection
}

// NewMongoClockInRepository creates a clock-in repository over the given database.
func NewMongoClockInRepository(db *mongo.Database, collection string) *MongoClockInRepository {
	return &MongoClockInRepository{collection: db.Collection(collection)}
}

// Insert stores a new clock-in record and reads back the stored document.
func (r *MongoClockInRepository) Insert(ctx context.Context, record model.ClockInRecord) (*model.ClockInRecord, error) {
	res, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to insert clock-in record: %w", err)
	}

	var created model.ClockInRecord
	if err := r.collection.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to read back clock-in record: %w", err)
	}
	return &created, nil
}

// FindByID retrieves a clock-in record by its hex id.
func (r *MongoClockInRepository) FindByID(ctx context.Context, id string) (*model.ClockInRecord, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var record model.ClockInRecord
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clock-in record: %w", err)
	}
	return &record, nil
}

// Find lists clock-in records matching the filter, capped at FindLimit.
func (r *MongoClockInRepository) Find(ctx context.Context, filter model.ClockInFilter) ([]model.ClockInRecord, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if filter.InsertDatetimeAfter != nil {
		query["insert_datetime"] = bson.M{"$gt": *filter.InsertDatetimeAfter}
	}

	opts := options.Find().SetLimit(FindLimit)
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock-in records: %w", err)
	}

	records := make([]model.ClockInRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode clock-in records: %w", err)
	}
	return records, nil
}

// Update applies the non-nil patch fields and reads back the document.
func (r *MongoClockInRepository) Update(ctx context.Context, id string, patch model.ClockInPatch) (*model.ClockInRecord, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}

	if len(set) > 0 {
		res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("failed to update clock-in record: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// Delete removes a clock-in record by its hex id.
func (r *MongoClockInRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete clock-in record: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/Shubham1613/FastAPI-Mongo/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoItemRepository implements ItemRepository using MongoDB.
type MongoItemRepository struct {
	collection *mongo.Collection
}

// NewMongoItemRepository creates an item repository over the given database.
func NewMongoItemRepository(db *mongo.Database, collection string) *MongoItemRepository {
	return &MongoItemRepository{collection: db.Collection(collection)}
}

// Insert stores a new item and reads back the stored document.
func (r *MongoItemRepository) Insert(ctx context.Context, item model.Item) (*model.Item, error) {
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	var created model.Item
	if err := r.collection.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to read back item: %w", err)
	}
	return &created, nil
}

// FindByID retrieves an item by its hex id.
func (r *MongoItemRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var item model.Item
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// Find lists items matching the filter, capped at FindLimit.
func (r *MongoItemRepository) Find(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.ExpiryDateAfter != nil {
		query["expiry_date"] = bson.M{"$gt": *filter.ExpiryDateAfter}
	}
	if filter.InsertDateAfter != nil {
		query["insert_date"] = bson.M{"$gt": *filter.InsertDateAfter}
	}
	if filter.QuantityGTE != nil {
		query["quantity"] = bson.M{"$gte": *filter.QuantityGTE}
	}

	opts := options.Find().SetLimit(FindLimit)
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]model.Item, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

// Update applies the non-nil patch fields and reads back the document.
// A patch with no fields performs no write and returns the current document.
func (r *MongoItemRepository) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.ItemName != nil {
		set["item_name"] = *patch.ItemName
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.ExpiryDate != nil {
		set["expiry_date"] = *patch.ExpiryDate
	}

	if len(set) > 0 {
		res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("failed to update item: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// Delete removes an item by its hex id.
func (r *MongoItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByEmail groups all items by email and counts each group.
func (r *MongoItemRepository) CountByEmail(ctx context.Context) ([]model.EmailCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$email"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate items: %w", err)
	}

	counts := make([]model.EmailCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode aggregation: %w", err)
	}
	return counts, nil
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the fixed format for item date fields (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Item represents an inventory item document.
type Item struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	ItemName   string             `bson:"item_name" json:"item_name"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	ExpiryDate time.Time          `bson:"expiry_date" json:"expiry_date"`
	InsertDate time.Time          `bson:"insert_date" json:"insert_date"`
}

// CreateItem is the request payload for creating an item.
// ExpiryDate arrives as a YYYY-MM-DD string and is parsed before storage.
type CreateItem struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	ItemName   string `json:"item_name" validate:"required"`
	Quantity   *int   `json:"quantity" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
}

// UpdateItem is the request payload for a partial item update.
// Absent or null fields are left untouched.
type UpdateItem struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	ItemName   *string `json:"item_name"`
	Quantity   *int    `json:"quantity"`
	ExpiryDate *string `json:"expiry_date"`
}

// ItemPatch holds the normalized set of fields to apply in an update.
type ItemPatch struct {
	Name       *string
	Email      *string
	ItemName   *string
	Quantity   *int
	ExpiryDate *time.Time
}

// ItemFilter holds normalized query constraints for listing items.
// Zero values impose no constraint.
type ItemFilter struct {
	Email           string
	ExpiryDateAfter *time.Time
	InsertDateAfter *time.Time
	QuantityGTE     *int
}

// EmailCount is one row of the group-by-email aggregation.
type EmailCount struct {
	Email string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

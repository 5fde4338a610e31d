package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateTimeLayout is the fixed format for clock-in timestamp filters
// (YYYY-MM-DDTHH:MM:SS).
const DateTimeLayout = "2006-01-02T15:04:05"

// ClockInRecord represents a clock-in document.
type ClockInRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Location       string             `bson:"location" json:"location"`
	InsertDatetime time.Time          `bson:"insert_datetime" json:"insert_datetime"`
}

// CreateClockIn is the request payload for creating a clock-in record.
type CreateClockIn struct {
	Email    string `json:"email" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// UpdateClockIn is the request payload for a partial clock-in update.
type UpdateClockIn struct {
	Email    *string `json:"email"`
	Location *string `json:"location"`
}

// ClockInPatch holds the normalized set of fields to apply in an update.
type ClockInPatch struct {
	Email    *string
	Location *string
}

// ClockInFilter holds normalized query constraints for listing clock-in
// records. Zero values impose no constraint.
type ClockInFilter struct {
	Email               string
	Location            string
	InsertDatetimeAfter *time.Time
}

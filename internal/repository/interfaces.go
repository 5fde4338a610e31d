package repository

import (
	"context"
	"errors"

	"github.com/Shubham1613/FastAPI-Mongo/internal/model"
)

// ErrNotFound is returned when no document matches the given id.
// A syntactically malformed id is reported the same way.
var ErrNotFound = errors.New("record not found")

// FindLimit caps every list query.
const FindLimit = 100

// ItemRepository defines item data access methods.
type ItemRepository interface {
	// Insert stores a new item and reads back the stored document.
	Insert(ctx context.Context, item model.Item) (*model.Item, error)

	// FindByID retrieves an item by its hex id.
	FindByID(ctx context.Context, id string) (*model.Item, error)

	// Find lists items matching the filter, capped at FindLimit.
	Find(ctx context.Context, filter model.ItemFilter) ([]model.Item, error)

	// Update applies the non-nil patch fields and reads back the document.
	Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error)

	// Delete removes an item by its hex id.
	Delete(ctx context.Context, id string) error

	// CountByEmail groups all items by email and counts each group.
	CountByEmail(ctx context.Context) ([]model.EmailCount, error)
}

// ClockInRepository defines clock-in record data access methods.
type ClockInRepository interface {
	Insert(ctx context.Context, record model.ClockInRecord) (*model.ClockInRecord, error)
	FindByID(ctx context.Context, id string) (*model.ClockInRecord, error)
	Find(ctx context.Context, filter model.ClockInFilter) ([]model.ClockInRecord, error)
	Update(ctx context.Context, id string, patch model.ClockInPatch) (*model.ClockInRecord, error)
	Delete(ctx context.Context, id string) error
}

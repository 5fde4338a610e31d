package repository

import (
	"context"
	"sync"

	"github.com/Shubham1613/FastAPI-Mongo/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryItemRepository implements ItemRepository with an in-process map.
// It backs the "memory" store driver and is the substitute store used in tests.
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]model.Item
}

// NewMemoryItemRepository creates an empty in-memory item repository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{items: make(map[string]model.Item)}
}

// Insert stores a new item under a freshly generated ObjectID.
func (r *MemoryItemRepository) Insert(ctx context.Context, item model.Item) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = primitive.NewObjectID()
	r.items[item.ID.Hex()] = item
	return &item, nil
}

// FindByID retrieves an item by its hex id.
func (r *MemoryItemRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	if _, err := parseObjectID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// Find lists items matching the filter, capped at FindLimit.
func (r *MemoryItemRepository) Find(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0)
	for _, item := range r.items {
		if filter.Email != "" && item.Email != filter.Email {
			continue
		}
		if filter.ExpiryDateAfter != nil && !item.ExpiryDate.After(*filter.ExpiryDateAfter) {
			continue
		}
		if filter.InsertDateAfter != nil && !item.InsertDate.After(*filter.InsertDateAfter) {
			continue
		}
		if filter.QuantityGTE != nil && item.Quantity < *filter.QuantityGTE {
			continue
		}
		items = append(items, item)
		if len(items) == FindLimit {
			break
		}
	}
	return items, nil
}

// Update applies the non-nil patch fields and returns the updated item.
func (r *MemoryItemRepository) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	if _, err := parseObjectID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Email != nil {
		item.Email = *patch.Email
	}
	if patch.ItemName != nil {
		item.ItemName = *patch.ItemName
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.ExpiryDate != nil {
		item.ExpiryDate = *patch.ExpiryDate
	}

	r.items[id] = item
	return &item, nil
}

// Delete removes an item by its hex id.
func (r *MemoryItemRepository) Delete(ctx context.Context, id string) error {
	if _, err := parseObjectID(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// CountByEmail groups all items by email and counts each group.
func (r *MemoryItemRepository) CountByEmail(ctx context.Context) ([]model.EmailCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byEmail := make(map[string]int64)
	for _, item := range r.items {
		byEmail[item.Email]++
	}

	counts := make([]model.EmailCount, 0, len(byEmail))
	for email, count := range byEmail {
		counts = append(counts, model.EmailCount{Email: email, Count: count})
	}
	return counts, nil
}

// MemoryClockInRepository implements ClockInRepository with an in-process map.
type MemoryClockInRepository struct {
	mu      sync.RWMutex
	records map[string]model.ClockInRecord
}

// NewMemoryClockInRepository creates an empty in-memory clock-in repository.
func NewMemoryClockInRepository() *MemoryClockInRepository {
	return &MemoryClockInRepository{records: make(map[string]model.ClockInRecord)}
}

// Insert stores a new clock-in record under a freshly generated ObjectID.
func (r *MemoryClockInRepository) Insert(ctx context.Context, record model.ClockInRecord) (*model.ClockInRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = primitive.NewObjectID()
	r.records[record.ID.Hex()] = record
	return &record, nil
}

// FindByID retrieves a clock-in record by its hex id.
func (r *MemoryClockInRepository) FindByID(ctx context.Context, id string) (*model.ClockInRecord, error) {
	if _, err := parseObjectID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// Find lists clock-in records matching the filter, capped at FindLimit.
func (r *MemoryClockInRepository) Find(ctx context.Context, filter model.ClockInFilter) ([]model.ClockInRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]model.ClockInRecord, 0)
	for _, record := range r.records {
		if filter.Email != "" && record.Email != filter.Email {
			continue
		}
		if filter.Location != "" && record.Location != filter.Location {
			continue
		}
		if filter.InsertDatetimeAfter != nil && !record.InsertDatetime.After(*filter.InsertDatetimeAfter) {
			continue
		}
		records = append(records, record)
		if len(records) == FindLimit {
			break
		}
	}
	return records, nil
}

// Update applies the non-nil patch fields and returns the updated record.
func (r *MemoryClockInRepository) Update(ctx context.Context, id string, patch model.ClockInPatch) (*model.ClockInRecord, error) {
	if _, err := parseObjectID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Email != nil {
		record.Email = *patch.Email
	}
	if patch.Location != nil {
		record.Location = *patch.Location
	}

	r.records[id] = record
	return &record, nil
}

// Delete removes a clock-in record by its hex id.
func (r *MemoryClockInRepository) Delete(ctx context.Context, id string) error {
	if _, err := parseObjectID(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}

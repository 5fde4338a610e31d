package service

import (
	"context"
	"time"

	"github.com/Shubham1613/FastAPI-Mongo/internal/model"
	"github.com/Shubham1613/FastAPI-Mongo/internal/repository"
	"github.com/Shubham1613/FastAPI-Mongo/pkg/apierror"
)

// ItemService handles item business logic: date normalization plus a single
// repository call per operation.
type ItemService struct {
	repo repository.ItemRepository
}

// NewItemService creates a new item service.
// Returns nil if repo is nil (required dependency).
func NewItemService(repo repository.ItemRepository) *ItemService {
	if repo == nil {
		return nil
	}
	return &ItemService{repo: repo}
}

// Create parses the expiry date, stamps the insert date, and stores the item.
func (s *ItemService) Create(ctx context.Context, in model.CreateItem) (*model.Item, error) {
	expiry, err := time.Parse(model.DateLayout, in.ExpiryDate)
	if err != nil {
		return nil, apierror.ParseError("expiry_date must match format YYYY-MM-DD")
	}

	item := model.Item{
		Name:       in.Name,
		Email:      in.Email,
		ItemName:   in.ItemName,
		Quantity:   *in.Quantity,
		ExpiryDate: expiry,
		InsertDate: time.Now().UTC(),
	}
	return s.repo.Insert(ctx, item)
}

// Filter lists items. Date parameters arrive as YYYY-MM-DD strings and are
// parsed here; empty parameters impose no constraint.
func (s *ItemService) Filter(ctx context.Context, email, expiryDateAfter, insertDateAfter string, quantityGTE *int) ([]model.Item, error) {
	filter := model.ItemFilter{
		Email:       email,
		QuantityGTE: quantityGTE,
	}

	if expiryDateAfter != "" {
		t, err := time.Parse(model.DateLayout, expiryDateAfter)
		if err != nil {
			return nil, apierror.ParseError("expiry_date_after must match format YYYY-MM-DD")
		}
		filter.ExpiryDateAfter = &t
	}
	if insertDateAfter != "" {
		t, err := time.Parse(model.DateLayout, insertDateAfter)
		if err != nil {
			return nil, apierror.ParseError("insert_date_after must match format YYYY-MM-DD")
		}
		filter.InsertDateAfter = &t
	}

	return s.repo.Find(ctx, filter)
}

// Get retrieves a single item by id.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the present-and-non-null fields of the update payload.
// An updated expiry_date is re-parsed from the fixed format.
func (s *ItemService) Update(ctx context.Context, id string, in model.UpdateItem) (*model.Item, error) {
	patch := model.ItemPatch{
		Name:     in.Name,
		Email:    in.Email,
		ItemName: in.ItemName,
		Quantity: in.Quantity,
	}

	if in.ExpiryDate != nil {
		t, err := time.Parse(model.DateLayout, *in.ExpiryDate)
		if err != nil {
			return nil, apierror.ParseError("expiry_date must match format YYYY-MM-DD")
		}
		patch.ExpiryDate = &t
	}

	return s.repo.Update(ctx, id, patch)
}

// Delete removes an item by id.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CountByEmail groups all items by email and counts each group.
func (s *ItemService) CountByEmail(ctx context.Context) ([]model.EmailCount, error) {
	return s.repo.CountByEmail(ctx)
}

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Shubham1613/FastAPI-Mongo/internal/model"
	"github.com/Shubham1613/FastAPI-Mongo/internal/repository"
)

func TestMemoryItemFindCap(t *testing.T) {
	repo := repository.NewMemoryItemRepository()
	ctx := context.Background()

	for i := 0; i < repository.FindLimit+20; i++ {
		_, err := repo.Insert(ctx, model.Item{
			Name:       fmt.Sprintf("item-%d", i),
			Email:      "bulk@example.com",
			ItemName:   "widget",
			Quantity:   i,
			ExpiryDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			InsertDate: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	items, err := repo.Find(ctx, model.ItemFilter{})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(items) != repository.FindLimit {
		t.Errorf("got %d items, want cap of %d", len(items), repository.FindLimit)
	}
}

func TestMemoryItemFilterSemantics(t *testing.T) {
	repo := repository.NewMemoryItemRepository()
	ctx := context.Background()

	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	seed := []model.Item{
		{Name: "before", Email: "a@x.com", ItemName: "w", Quantity: 4, ExpiryDate: cutoff.AddDate(0, 0, -1), InsertDate: cutoff},
		{Name: "equal", Email: "a@x.com", ItemName: "w", Quantity: 5, ExpiryDate: cutoff, InsertDate: cutoff},
		{Name: "after", Email: "b@x.com", ItemName: "w", Quantity: 6, ExpiryDate: cutoff.AddDate(0, 0, 1), InsertDate: cutoff},
	}
	for _, item := range seed {
		if _, err := repo.Insert(ctx, item); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	// expiry_date_after is strict: the boundary value is excluded.
	items, err := repo.Find(ctx, model.ItemFilter{ExpiryDateAfter: &cutoff})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(items) != 1 || items[0].Name != "after" {
		t.Errorf("ExpiryDateAfter: got %+v, want only the later item", items)
	}

	// quantity_gte is inclusive.
	gte := 5
	items, err = repo.Find(ctx, model.ItemFilter{QuantityGTE: &gte})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("QuantityGTE: got %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.Quantity < 5 {
			t.Errorf("QuantityGTE returned quantity %d", item.Quantity)
		}
	}
}

func TestMemoryMalformedIDIsNotFound(t *testing.T) {
	repo := repository.NewMemoryItemRepository()
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, "zzz"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindByID: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "zzz"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete: err = %v, want ErrNotFound", err)
	}
	if _, err := repo.Update(ctx, "zzz", model.ItemPatch{}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Update: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryCountByEmail(t *testing.T) {
	repo := repository.NewMemoryItemRepository()
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "a@x.com", "b@x.com"} {
		if _, err := repo.Insert(ctx, model.Item{Name: "n", Email: email, ItemName: "w"}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	counts, err := repo.CountByEmail(ctx)
	if err != nil {
		t.Fatalf("CountByEmail: %v", err)
	}

	got := make(map[string]int64)
	for _, c := range counts {
		got[c.Email] = c.Count
	}
	if got["a@x.com"] != 2 || got["b@x.com"] != 1 {
		t.Errorf("counts = %v", got)
	}
}

package service

import (
	"context"
	"time"

	"github.com/Shubham1613/FastAPI-Mongo/internal/model"
	"github.com/Shubham1613/FastAPI-Mongo/internal/repository"
	"github.com/Shubham1613/FastAPI-Mongo/pkg/apierror"
)

// ClockInService handles clock-in record business logic.
type ClockInService struct {
	repo repository.ClockInRepository
}

// NewClockInService creates a new clock-in service.
// Returns nil if repo is nil (required dependency).
func NewClockInService(repo repository.ClockInRepository) *ClockInService {
	if repo == nil {
		return nil
	}
	return &ClockInService{repo: repo}
}

// Create stamps the insert datetime and stores the record.
func (s *ClockInService) Create(ctx context.Context, in model.CreateClockIn) (*model.ClockInRecord, error) {
	record := model.ClockInRecord{
		Email:          in.Email,
		Location:       in.Location,
		InsertDatetime: time.Now().UTC(),
	}
	return s.repo.Insert(ctx, record)
}

// Filter lists clock-in records. insert_datetime_after arrives as a
// YYYY-MM-DDTHH:MM:SS string; empty parameters impose no constraint.
func (s *ClockInService) Filter(ctx context.Context, email, location, insertDatetimeAfter string) ([]model.ClockInRecord, error) {
	filter := model.ClockInFilter{
		Email:    email,
		Location: location,
	}

	if insertDatetimeAfter != "" {
		t, err := time.Parse(model.DateTimeLayout, insertDatetimeAfter)
		if err != nil {
			return nil, apierror.ParseError("insert_datetime_after must match format YYYY-MM-DDTHH:MM:SS")
		}
		filter.InsertDatetimeAfter = &t
	}

	return s.repo.Find(ctx, filter)
}

// Get retrieves a single clock-in record by id.
func (s *ClockInService) Get(ctx context.Context, id string) (*model.ClockInRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the present-and-non-null fields of the update payload.
func (s *ClockInService) Update(ctx context.Context, id string, in model.UpdateClockIn) (*model.ClockInRecord, error) {
	patch := model.ClockInPatch{
		Email:    in.Email,
		Location: in.Location,
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a clock-in record by id.
func (s *ClockInService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"property-service/internal/logger"
	"property-service/internal/model"
	"property-service/internal/repository"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingStore is the storage the listing service runs against.
type ListingStore interface {
	Search(ctx context.Context, f model.ListingFilter) ([]model.Listing, error)
	ListByRegion(ctx context.Context, region string) ([]model.Listing, error)
	GetByID(ctx context.Context, id int64) (*model.Listing, error)
	Create(ctx context.Context, in model.ListingInput, typ string, images *string) (int64, error)
	Update(ctx context.Context, id int64, in model.ListingInput, typ string, images *string) (int64, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
}

// ListingService contains the listing read and write flows.
type ListingService struct {
	store ListingStore
}

func NewListingService(store ListingStore) *ListingService {
	return &ListingService{store: store}
}

// List returns normalized active listings matching the filter, newest first.
func (s *ListingService) List(ctx context.Context, f model.ListingFilter) ([]model.ListingView, error) {
	var (
		rows []model.Listing
		err  error
	)
	if f.RegionOnly() {
		rows, err = s.store.ListByRegion(ctx, *f.Region)
	} else {
		rows, err = s.store.Search(ctx, f)
	}
	if err != nil {
		return nil, fmt.Errorf("ListingService.List: %w", err)
	}
	return NormalizeListings(rows), nil
}

// Get returns one normalized active listing or ErrListingNotFound.
func (s *ListingService) Get(ctx context.Context, id int64) (*model.ListingView, error) {
	l, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingService.Get: %w", err)
	}
	view := NormalizeListing(*l)
	return &view, nil
}

// Create stores a new active listing and returns its id.
func (s *ListingService) Create(ctx context.Context, in model.ListingInput) (int64, error) {
	images, err := encodeImages(in.Images)
	if err != nil {
		return 0, fmt.Errorf("ListingService.Create: encode images: %w", err)
	}
	id, err := s.store.Create(ctx, in, propertyType(in.Type), images)
	if err != nil {
		return 0, fmt.Errorf("ListingService.Create: %w", err)
	}
	logger.FromContext(ctx).Info("listing created", "listing_id", id)
	return id, nil
}

// Update overwrites an active listing. It reports rows changed; zero means
// there was no active listing with that id.
func (s *ListingService) Update(ctx context.Context, id int64, in model.ListingInput) (int64, error) {
	images, err := encodeImages(in.Images)
	if err != nil {
		return 0, fmt.Errorf("ListingService.Update: encode images: %w", err)
	}
	changes, err := s.store.Update(ctx, id, in, propertyType(in.Type), images)
	if err != nil {
		return 0, fmt.Errorf("ListingService.Update: %w", err)
	}
	logger.FromContext(ctx).Info("listing updated", "listing_id", id, "changes", changes)
	return changes, nil
}

// Delete soft-deletes an active listing and reports rows changed.
func (s *ListingService) Delete(ctx context.Context, id int64) (int64, error) {
	changes, err := s.store.SoftDelete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("ListingService.Delete: %w", err)
	}
	logger.FromContext(ctx).Info("listing deleted", "listing_id", id, "changes", changes)
	return changes, nil
}

func propertyType(t *string) string {
	if t == nil || *t == "" {
		return model.DefaultPropertyType
	}
	return *t
}

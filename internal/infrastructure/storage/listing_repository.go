package storage

import (
	"context"
	"fmt"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// ListingRepository persists the listing collection in a single slot of any
// SlotStore driver.
type ListingRepository struct {
	store ports.SlotStore
}

func NewListingRepository(store ports.SlotStore) *ListingRepository {
	return &ListingRepository{store: store}
}

func (r *ListingRepository) LoadAll(ctx context.Context) ([]domain.Listing, error) {
	data, err := r.store.Read(ctx, SlotListings)
	if err != nil {
		return nil, err
	}
	return DecodeListings(data)
}

func (r *ListingRepository) SaveAll(ctx context.Context, listings []domain.Listing) error {
	data, err := EncodeListings(listings)
	if err != nil {
		return fmt.Errorf("encode listings: %w", err)
	}
	return r.store.Write(ctx, SlotListings, data)
}

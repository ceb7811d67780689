package ports

import (
	"context"

	"github.com/toyshare/toyshare-api/internal/core/domain"
)

// ListingRepository persists the listing collection as a single slot.
// Every write rewrites the whole collection; nothing is appended in place.
type ListingRepository interface {
	// LoadAll reads and decodes the persisted collection. A missing slot is
	// reported as ErrSlotEmpty, which the service treats as "seed me".
	LoadAll(ctx context.Context) ([]domain.Listing, error)
	// SaveAll serialises the full collection and overwrites the slot.
	SaveAll(ctx context.Context, listings []domain.Listing) error
}

package ports

import (
	"context"

	"github.com/toyshare/toyshare-api/internal/core/domain"
)

// CreateListingInput carries all caller-supplied data for a new listing.
// ID and both timestamps are assigned by the store, never by the caller.
// CategoryID is the static category identifier; the store resolves it to the
// display name before persisting.
type CreateListingInput struct {
	Title       string
	Description string
	Price       string
	Condition   string
	CategoryID  string
	Images      []string
	Location    string
	Coordinates *CoordinatesInput
	UserID      string
}

// CoordinatesInput holds geographic coordinates.
type CoordinatesInput struct {
	Lat float64
	Lng float64
}

// ListingPatch is an explicit partial update: nil fields are left untouched,
// non-nil fields override the stored value. UpdatedAt is always refreshed by
// the store.
type ListingPatch struct {
	Title       *string
	Description *string
	Price       *string
	Condition   *string
	Category    *string
	Images      *[]string
	Location    *string
	Coordinates *CoordinatesInput
}

// BrowseFilter carries the optional browse predicates. Empty fields are
// ignored; supplied fields are combined with logical AND.
type BrowseFilter struct {
	Search     string // case-insensitive substring of title or description
	CategoryID string // static category identifier, resolved to display name
	Condition  string // exact match against the condition enumeration
	Location   string // case-insensitive substring of the location string
}

// ListingService defines the listing store operations.
type ListingService interface {
	// List returns the full collection in insertion order.
	List(ctx context.Context) ([]domain.Listing, error)
	// Featured returns the first three listings of the current collection
	// order. Positional, not algorithmic.
	Featured(ctx context.Context) ([]domain.Listing, error)
	// ByUser returns every listing owned by userID, in store order.
	ByUser(ctx context.Context, userID string) ([]domain.Listing, error)
	// ByID returns a single listing or domain.ErrListingNotFound.
	ByID(ctx context.Context, id string) (*domain.Listing, error)
	// Browse filters the collection by the AND of all supplied predicates,
	// preserving store order.
	Browse(ctx context.Context, filter BrowseFilter) ([]domain.Listing, error)
	Create(ctx context.Context, input CreateListingInput) (*domain.Listing, error)
	Update(ctx context.Context, id string, patch ListingPatch) (*domain.Listing, error)
	// Delete removes the listing with the given id; absent ids are a no-op.
	Delete(ctx context.Context, id string) error
}

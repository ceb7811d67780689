package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// ListingService owns the authoritative in-memory listing collection and
// keeps the persistent slot consistent: every mutation rewrites the whole
// collection before it is committed to memory.
type ListingService struct {
	repo   ports.ListingRepository
	logger zerolog.Logger

	mu       sync.RWMutex
	listings []domain.Listing
	lastID   int64 // last issued creation timestamp in ms, for collision bumps
}

func NewListingService(repo ports.ListingRepository, logger zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, logger: logger}
}

// Init hydrates the collection from storage. A missing slot is populated with
// the fixed seed set and written back immediately, so the store is never
// empty after initialization in a fresh environment.
func (s *ListingService) Init(ctx context.Context) error {
	loaded, err := s.repo.LoadAll(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrSlotEmpty) {
			return err
		}
		loaded = domain.SeedListings()
		if err := s.repo.SaveAll(ctx, loaded); err != nil {
			return err
		}
		s.logger.Info().Int("count", len(loaded)).Msg("listing store seeded")
	} else {
		s.logger.Info().Int("count", len(loaded)).Msg("listing store hydrated")
	}

	s.mu.Lock()
	s.listings = loaded
	s.mu.Unlock()
	return nil
}

// List returns the full collection in insertion order.
func (s *ListingService) List(_ context.Context) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(), nil
}

// Featured returns the first three listings of the current collection order.
func (s *ListingService) Featured(_ context.Context) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 3
	if len(s.listings) < n {
		n = len(s.listings)
	}
	out := make([]domain.Listing, n)
	copy(out, s.listings[:n])
	return out, nil
}

// ByUser returns every listing owned by userID, in store order.
func (s *ListingService) ByUser(_ context.Context, userID string) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Listing
	for _, l := range s.listings {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ByID returns the listing with the given id or domain.ErrListingNotFound.
func (s *ListingService) ByID(_ context.Context, id string) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.listings {
		if l.ID == id {
			clone := l
			return &clone, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

// Browse filters the collection by the logical AND of all supplied non-empty
// predicates, preserving store order. No ranking is applied.
func (s *ListingService) Browse(_ context.Context, filter ports.BrowseFilter) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// An unknown category identifier disables the category predicate rather
	// than matching nothing, mirroring the browse view.
	categoryName, filterCategory := domain.CategoryNameByID(filter.CategoryID)

	search := strings.ToLower(filter.Search)
	location := strings.ToLower(filter.Location)

	out := make([]domain.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Title), search) &&
			!strings.Contains(strings.ToLower(l.Description), search) {
			continue
		}
		if filterCategory && l.Category != categoryName {
			continue
		}
		if filter.Condition != "" && string(l.Condition) != filter.Condition {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(l.Location), location) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// Create assigns a fresh identifier and both timestamps, resolves the
// category identifier to its display name, appends the listing, and rewrites
// the persistent slot with the full updated collection.
func (s *ListingService) Create(ctx context.Context, input ports.CreateListingInput) (*domain.Listing, error) {
	condition := domain.Condition(input.Condition)
	if !condition.IsValid() {
		return nil, domain.ErrInvalidCondition
	}
	if len(input.Images) == 0 {
		return nil, domain.ErrNoImages
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	listing := domain.Listing{
		ID:          s.nextID(now),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Condition:   condition,
		Category:    domain.ResolveCategory(input.CategoryID),
		Images:      input.Images,
		Location:    input.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      input.UserID,
	}
	if input.Coordinates != nil {
		listing.Coordinates = &domain.Coordinates{
			Lat: input.Coordinates.Lat,
			Lng: input.Coordinates.Lng,
		}
	}

	updated := append(s.snapshot(), listing)
	if err := s.repo.SaveAll(ctx, updated); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist created listing")
		return nil, err
	}
	s.listings = updated

	s.logger.Info().Str("listing_id", listing.ID).Str("user_id", listing.UserID).Msg("listing created")
	clone := listing
	return &clone, nil
}

// Update merges the patch onto the stored listing, refreshes UpdatedAt, and
// rewrites the slot. Fails with domain.ErrListingNotFound when no listing has
// the given id.
func (s *ListingService) Update(ctx context.Context, id string, patch ports.ListingPatch) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, l := range s.listings {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrListingNotFound
	}

	merged := applyPatch(s.listings[idx], patch)
	merged.UpdatedAt = time.Now().UTC()

	updated := s.snapshot()
	updated[idx] = merged
	if err := s.repo.SaveAll(ctx, updated); err != nil {
		s.logger.Error().Err(err).Str("listing_id", id).Msg("failed to persist updated listing")
		return nil, err
	}
	s.listings = updated

	clone := merged
	return &clone, nil
}

// Delete removes the listing with the given id and rewrites the slot.
// Absent ids are a no-op, but the slot is still rewritten.
func (s *ListingService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]domain.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if l.ID != id {
			updated = append(updated, l)
		}
	}
	if err := s.repo.SaveAll(ctx, updated); err != nil {
		s.logger.Error().Err(err).Str("listing_id", id).Msg("failed to persist listing deletion")
		return err
	}
	s.listings = updated
	return nil
}

// snapshot returns a copy of the collection slice. Callers own the returned
// slice; element structs are value copies.
func (s *ListingService) snapshot() []domain.Listing {
	out := make([]domain.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// nextID derives an identifier from the creation time in milliseconds,
// bumping forward on collision so identifiers issued during one process
// lifetime are pairwise distinct.
func (s *ListingService) nextID(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return fmt.Sprintf("ad-%d", ms)
}

// applyPatch merges patch onto base field by field; set fields override.
func applyPatch(base domain.Listing, patch ports.ListingPatch) domain.Listing {
	if patch.Title != nil {
		base.Title = *patch.Title
	}
	if patch.Description != nil {
		base.Description = *patch.Description
	}
	if patch.Price != nil {
		base.Price = *patch.Price
	}
	if patch.Condition != nil {
		base.Condition = domain.Condition(*patch.Condition)
	}
	if patch.Category != nil {
		base.Category = *patch.Category
	}
	if patch.Images != nil {
		base.Images = *patch.Images
	}
	if patch.Location != nil {
		base.Location = *patch.Location
	}
	if patch.Coordinates != nil {
		base.Coordinates = &domain.Coordinates{
			Lat: patch.Coordinates.Lat,
			Lng: patch.Coordinates.Lng,
		}
	}
	return base
}

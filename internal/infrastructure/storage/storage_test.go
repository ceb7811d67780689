package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
	"github.com/toyshare/toyshare-api/internal/infrastructure/storage/memory"
)

func TestListingRepository_RoundTrip(t *testing.T) {
	repo := NewListingRepository(memory.NewStore())
	ctx := context.Background()

	original := domain.SeedListings()
	// Sub-second precision must survive the string timestamp round trip.
	original[0].UpdatedAt = time.Date(2023, 11, 2, 9, 30, 15, 123456789, time.UTC)
	original[1].Coordinates = &domain.Coordinates{Lat: 40.6782, Lng: -73.9442}

	if err := repo.SaveAll(ctx, original); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}

	if !reflect.DeepEqual(original, loaded) {
		t.Fatalf("round trip not lossless:\nsaved:  %+v\nloaded: %+v", original, loaded)
	}
}

func TestListingRepository_EmptySlot(t *testing.T) {
	repo := NewListingRepository(memory.NewStore())

	_, err := repo.LoadAll(context.Background())
	if !errors.Is(err, ports.ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}
}

func TestListingRepository_SaveEmptyCollection(t *testing.T) {
	repo := NewListingRepository(memory.NewStore())
	ctx := context.Background()

	if err := repo.SaveAll(ctx, []domain.Listing{}); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("an empty collection is a written slot, not an empty one: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty collection, got %d", len(loaded))
	}
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := NewSessionRepository(memory.NewStore())
	ctx := context.Background()

	user := &domain.User{
		ID:     "1",
		Name:   "John Doe",
		Email:  "john@example.com",
		Rating: 4.8,
		Role:   domain.RoleUser,
	}
	if err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(user, loaded) {
		t.Fatalf("round trip not lossless: %+v vs %+v", user, loaded)
	}
}

func TestSessionRepository_ClearEmptiesSlot(t *testing.T) {
	repo := NewSessionRepository(memory.NewStore())
	ctx := context.Background()

	if err := repo.Save(ctx, &domain.User{ID: "2"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, err := repo.Load(ctx); !errors.Is(err, ports.ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty after clear, got %v", err)
	}
}

func TestDecodeListings_RejectsMalformedTimestamp(t *testing.T) {
	blob := []byte(`[{"id":"x","createdAt":"not-a-date","updatedAt":"2023-10-15T00:00:00Z"}]`)
	if _, err := DecodeListings(blob); err == nil {
		t.Fatalf("expected decode error for malformed timestamp")
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	listings := NewListingRepository(store)
	sessions := NewSessionRepository(store)

	if err := listings.SaveAll(ctx, domain.SeedListings()); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	if _, err := sessions.Load(ctx); !errors.Is(err, ports.ErrSlotEmpty) {
		t.Fatalf("listing writes must not touch the session slot: %v", err)
	}
}

package ports

import (
	"context"
	"errors"
)

// ErrSlotEmpty signals that a storage slot has never been written (or was
// deleted). Repositories surface it so callers can fall back to seed data.
var ErrSlotEmpty = errors.New("storage slot is empty")

// SlotStore is the persistent string-keyed key-value storage the application
// mirrors its state into. Each slot holds one opaque serialized blob and is
// always overwritten whole.
type SlotStore interface {
	// Read returns the blob stored under key, or ErrSlotEmpty.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write overwrites the blob stored under key.
	Write(ctx context.Context, key string, value []byte) error
	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
}

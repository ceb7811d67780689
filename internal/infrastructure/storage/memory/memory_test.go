package memory

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/toyshare/toyshare-api/internal/core/ports"
)

func TestStore_ReadMissingKey(t *testing.T) {
	store := NewStore()

	if _, err := store.Read(context.Background(), "absent"); !errors.Is(err, ports.ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}
}

func TestStore_WriteOverwrites(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Write(ctx, "k", []byte("first")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := store.Write(ctx, "k", []byte("second")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := store.Read(ctx, "k")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !bytes.Equal(data, []byte("second")) {
		t.Fatalf("expected latest value, got %q", data)
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Write(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("repeated Delete returned error: %v", err)
	}
	if _, err := store.Read(ctx, "k"); !errors.Is(err, ports.ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty after delete, got %v", err)
	}
}

func TestStore_CopiesBuffers(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	in := []byte("stable")
	if err := store.Write(ctx, "k", in); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	in[0] = 'X'

	out, _ := store.Read(ctx, "k")
	if !bytes.Equal(out, []byte("stable")) {
		t.Fatalf("store shares the caller's buffer: %q", out)
	}
	out[0] = 'Y'

	again, _ := store.Read(ctx, "k")
	if !bytes.Equal(again, []byte("stable")) {
		t.Fatalf("store leaked its internal buffer: %q", again)
	}
}

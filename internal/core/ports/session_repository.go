package ports

import (
	"context"

	"github.com/toyshare/toyshare-api/internal/core/domain"
)

// SessionRepository persists the single current-user slot.
type SessionRepository interface {
	// Load returns the persisted current user, or ErrSlotEmpty.
	Load(ctx context.Context) (*domain.User, error)
	// Save overwrites the slot with user.
	Save(ctx context.Context, user *domain.User) error
	// Clear removes the slot.
	Clear(ctx context.Context) error
}

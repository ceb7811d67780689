package storage

import (
	"context"
	"fmt"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// SessionRepository persists the single current-user slot.
type SessionRepository struct {
	store ports.SlotStore
}

func NewSessionRepository(store ports.SlotStore) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Load(ctx context.Context) (*domain.User, error) {
	data, err := r.store.Read(ctx, SlotSession)
	if err != nil {
		return nil, err
	}
	return DecodeUser(data)
}

func (r *SessionRepository) Save(ctx context.Context, user *domain.User) error {
	data, err := EncodeUser(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return r.store.Write(ctx, SlotSession, data)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, SlotSession)
}

package ports

import (
	"context"

	"github.com/toyshare/toyshare-api/internal/core/domain"
)

// SessionResult is returned on successful login or signup.
type SessionResult struct {
	Token string
	User  *domain.User
}

// SessionService tracks at most one current user.
type SessionService interface {
	// Login matches email case-sensitively against the fixed roster after a
	// simulated network delay. The password is accepted but never checked.
	// On no match it fails with domain.ErrInvalidCredentials and the current
	// user remains unset.
	Login(ctx context.Context, email, password string) (*SessionResult, error)
	// Signup always succeeds after the same delay: it fabricates a brand-new
	// unprivileged account and makes it current. Neither email uniqueness
	// nor password strength is validated.
	Signup(ctx context.Context, name, email, password string) (*SessionResult, error)
	// Logout clears the current user and removes the persisted slot.
	// Synchronous, no delay.
	Logout(ctx context.Context) error
	// Current returns the current user, or nil when no one is logged in.
	Current(ctx context.Context) *domain.User
}

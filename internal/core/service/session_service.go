package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// SessionService tracks at most one current user against a fixed mock
// roster. Login and signup simulate a network round trip with a fixed delay;
// passwords are accepted but never verified.
type SessionService struct {
	repo      ports.SessionRepository
	roster    []domain.User
	delay     time.Duration
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger

	mu      sync.RWMutex
	current *domain.User
	lastID  int64 // last fabricated signup id in ms, for collision bumps
}

func NewSessionService(repo ports.SessionRepository, roster []domain.User, delay time.Duration, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		repo:      repo,
		roster:    roster,
		delay:     delay,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Init rehydrates the current user from the persisted slot. An empty slot
// means no one is logged in.
func (s *SessionService) Init(ctx context.Context) error {
	user, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrSlotEmpty) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	s.logger.Info().Str("user_id", user.ID).Msg("session rehydrated")
	return nil
}

// Login matches email case-sensitively against the roster. The password
// parameter is deliberately unused. On a miss the current user is untouched.
func (s *SessionService) Login(ctx context.Context, email, _ string) (*ports.SessionResult, error) {
	var found *domain.User
	for i := range s.roster {
		if s.roster[i].Email == email {
			clone := s.roster[i]
			found = &clone
			break
		}
	}
	if found == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, found); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = found
	s.mu.Unlock()

	token, err := s.generateToken(found)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", found.ID).Str("role", found.Role).Msg("user logged in")
	clone := *found
	return &ports.SessionResult{Token: token, User: &clone}, nil
}

// Signup always succeeds: it fabricates a brand-new unprivileged account,
// makes it current and persists it. Email uniqueness is not validated.
func (s *SessionService) Signup(ctx context.Context, name, email, _ string) (*ports.SessionResult, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:    s.nextID(time.Now()),
		Name:  name,
		Email: email,
		Role:  domain.RoleUser,
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user signed up")
	clone := *user
	return &ports.SessionResult{Token: token, User: &clone}, nil
}

// Logout clears the current user and removes the persisted slot. No delay.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.repo.Clear(ctx)
}

// Current returns the current user, or nil when no one is logged in.
func (s *SessionService) Current(_ context.Context) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

// simulateDelay waits for the configured mock network delay, honouring
// context cancellation.
func (s *SessionService) simulateDelay(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SessionService) nextID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return fmt.Sprintf("user-%d", ms)
}

func (s *SessionService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

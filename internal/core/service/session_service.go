package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reelspro/reels-api/internal/core/domain"
	"github.com/reelspro/reels-api/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService issues opaque server-side sessions and resolves them back
// to identities. Tokens carry no claims themselves; the store is the single
// source of truth, so revocation is immediate.
type SessionService struct {
	repo   ports.SessionRepository
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionService(repo ports.SessionRepository, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{repo: repo, ttl: ttl, logger: logger}
}

func (s *SessionService) Issue(ctx context.Context, email string) (*domain.Session, error) {
	session := &domain.Session{
		Token:     uuid.NewString(),
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.repo.Save(ctx, session, s.ttl); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve never rejects a request itself: any token that does not map to a
// live session simply resolves to Anonymous, and store failures are logged
// and treated the same so a flaky session store degrades reads, not writes.
func (s *SessionService) Resolve(ctx context.Context, token string) domain.Identity {
	if token == "" {
		return domain.Anonymous
	}
	session, err := s.repo.Find(ctx, token)
	if err != nil {
		s.logger.Error().Err(err).Msg("session lookup failed")
		return domain.Anonymous
	}
	if session == nil || time.Now().UTC().After(session.ExpiresAt) {
		return domain.Anonymous
	}
	return domain.Identity{Email: session.Email}
}

func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.Delete(ctx, token)
}

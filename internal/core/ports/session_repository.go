package ports

import (
	"context"
	"time"

	"github.com/reelspro/reels-api/internal/core/domain"
)

// SessionRepository stores session records keyed by their opaque token.
// Records expire on their own after the TTL passed at save time.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	// Find returns (nil, nil) for an unknown or expired token; only transport
	// failures surface as errors.
	Find(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

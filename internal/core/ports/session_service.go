package ports

import (
	"context"

	"github.com/reelspro/reels-api/internal/core/domain"
)

// SessionService issues and resolves session assertions.
type SessionService interface {
	// Issue creates a session for a verified identity and returns it with
	// the opaque token the client must present on gated requests.
	Issue(ctx context.Context, email string) (*domain.Session, error)
	// Resolve maps a presented token to an Identity. Missing, unknown, or
	// expired tokens resolve to domain.Anonymous; Resolve never fails the
	// request on its own.
	Resolve(ctx context.Context, token string) domain.Identity
	// Revoke invalidates a session. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}

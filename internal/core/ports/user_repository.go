package ports

import (
	"context"

	"github.com/reelspro/reels-api/internal/core/domain"
)

// UserRepository defines persistence for credential records.
type UserRepository interface {
	// Create inserts a new user. A duplicate email yields domain.ErrUserExists;
	// the backing store enforces uniqueness with a constraint, not a read.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

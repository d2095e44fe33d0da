package ports

import (
	"context"

	"github.com/reelspro/reels-api/internal/core/domain"
)

// AuthService registers credentials and verifies them at login.
type AuthService interface {
	// Register creates a new credential record. Missing fields yield
	// domain.ErrInvalidInput, a taken email domain.ErrUserExists.
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login verifies the presented password. Unknown email and wrong password
	// both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

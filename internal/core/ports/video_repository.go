package ports

import (
	"context"

	"github.com/reelspro/reels-api/internal/core/domain"
)

// VideoRepository defines persistence for catalog records.
type VideoRepository interface {
	// Insert persists a new video and returns the stored record including
	// its generated id.
	Insert(ctx context.Context, video *domain.Video) (*domain.Video, error)
	// List returns all videos ordered by created_at descending. An empty
	// catalog yields an empty slice, not an error.
	List(ctx context.Context) ([]*domain.Video, error)
}

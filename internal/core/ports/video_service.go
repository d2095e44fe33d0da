package ports

import (
	"context"

	"github.com/reelspro/reels-api/internal/core/domain"
)

// CreateVideoInput carries the caller-supplied fields for a new catalog
// record. Quality and Controls are pointers so absence can be told apart
// from a zero value; width and height are not accepted at all because the
// service forces the catalog-wide dimensions.
type CreateVideoInput struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Quality      *int
	Controls     *bool
}

// VideoService exposes the public catalog listing and the gated create.
type VideoService interface {
	List(ctx context.Context) ([]*domain.Video, error)
	// Create requires a non-anonymous identity; otherwise it returns
	// domain.ErrUnauthorized without touching the store.
	Create(ctx context.Context, identity domain.Identity, input CreateVideoInput) (*domain.Video, error)
}

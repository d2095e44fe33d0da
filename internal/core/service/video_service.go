package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelspro/reels-api/internal/core/domain"
	"github.com/reelspro/reels-api/internal/core/ports"
)

// VideoService implements the public listing and the session-gated create.
type VideoService struct {
	repo   ports.VideoRepository
	logger zerolog.Logger
}

func NewVideoService(repo ports.VideoRepository, logger zerolog.Logger) *VideoService {
	return &VideoService{repo: repo, logger: logger}
}

func (s *VideoService) List(ctx context.Context) ([]*domain.Video, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []*domain.Video{}
	}
	return videos, nil
}

// Create validates and defaults the payload, then persists it. Repeated calls
// with identical payloads create distinct records; there is no dedup key.
func (s *VideoService) Create(ctx context.Context, identity domain.Identity, input ports.CreateVideoInput) (*domain.Video, error) {
	if identity.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}

	if input.Title == "" || input.Description == "" || input.VideoURL == "" || input.ThumbnailURL == "" {
		return nil, domain.ErrInvalidInput
	}

	quality := domain.DefaultQuality
	if input.Quality != nil {
		quality = *input.Quality
	}
	if quality < domain.MinQuality || quality > domain.MaxQuality {
		return nil, domain.ErrInvalidInput
	}

	controls := true
	if input.Controls != nil {
		controls = *input.Controls
	}

	now := time.Now().UTC()
	video := &domain.Video{
		Title:        input.Title,
		Description:  input.Description,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
		Controls:     controls,
		Transformation: domain.Transformation{
			// Dimensions are never taken from the caller.
			Width:   domain.VideoWidth,
			Height:  domain.VideoHeight,
			Quality: quality,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, video)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert video")
		return nil, err
	}

	s.logger.Info().Str("video_id", created.ID).Str("email", identity.Email).Msg("video published")
	return created, nil
}

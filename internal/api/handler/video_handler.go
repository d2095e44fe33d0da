package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelspro/reels-api/internal/api/metrics"
	"github.com/reelspro/reels-api/internal/core/domain"
	"github.com/reelspro/reels-api/internal/core/ports"
)

// VideoHandler handles HTTP requests for the video catalog.
type VideoHandler struct {
	service ports.VideoService
}

func NewVideoHandler(service ports.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// List returns every published video, newest first.
//
// @Summary      List published videos
// @Tags         videos
// @Produce      json
// @Success      200  {array}   videoResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/videos [get]
func (h *VideoHandler) List(c echo.Context) error {
	videos, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, toVideoResponse(v))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create publishes a new video record.
//
// @Summary      Publish a video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVideoRequest  true  "Video metadata"
// @Success      201   {object}  videoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/videos [post]
func (h *VideoHandler) Create(c echo.Context) error {
	identity := currentIdentity(c)
	if identity.IsAnonymous() {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	}

	var req createVideoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Controls:     req.Controls,
	}
	if req.Transformation != nil {
		input.Quality = req.Transformation.Quality
	}

	video, err := h.service.Create(c.Request().Context(), identity, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid video payload"})
		}
		return err
	}

	metrics.VideosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toVideoResponse(video))
}

func toVideoResponse(v *domain.Video) videoResponse {
	return videoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Controls:     v.Controls,
		Transformation: transformationResponse{
			Height:  v.Transformation.Height,
			Width:   v.Transformation.Width,
			Quality: v.Transformation.Quality,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

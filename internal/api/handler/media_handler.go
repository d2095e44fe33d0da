package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelspro/reels-api/internal/api/metrics"
	"github.com/reelspro/reels-api/internal/core/ports"
)

// MediaHandler hands out upload credentials for direct-to-storage uploads.
type MediaHandler struct {
	service ports.MediaService
}

func NewMediaHandler(service ports.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// UploadCredentials returns presigned PUT targets for a video and thumbnail
// pair. Gated: credentials exist only to feed the gated publish operation.
//
// @Summary      Issue upload credentials
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.UploadCredentials
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/media/upload-credentials [get]
func (h *MediaHandler) UploadCredentials(c echo.Context) error {
	if currentIdentity(c).IsAnonymous() {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	}

	creds, err := h.service.UploadCredentials(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.UploadCredentialsIssuedTotal.Inc()
	return c.JSON(http.StatusOK, creds)
}

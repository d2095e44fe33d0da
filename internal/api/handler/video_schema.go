package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// transformationRequest accepts only the quality knob. Width and height are
// not part of the contract: the catalog forces the portrait reel dimensions
// on every record, so caller-supplied values would be ignored anyway and the
// schema does not pretend otherwise.
type transformationRequest struct {
	Quality *int `json:"quality" validate:"omitempty,min=1,max=100"`
}

type createVideoRequest struct {
	Title          string                 `json:"title"          validate:"required"`
	Description    string                 `json:"description"    validate:"required"`
	VideoURL       string                 `json:"video_url"      validate:"required"`
	ThumbnailURL   string                 `json:"thumbnail_url"  validate:"required"`
	Transformation *transformationRequest `json:"transformation"`
	Controls       *bool                  `json:"controls"`
}

type transformationResponse struct {
	Height  int `json:"height"`
	Width   int `json:"width"`
	Quality int `json:"quality"`
}

// videoResponse is the transport view of a catalog record. It is kept
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type videoResponse struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	VideoURL       string                 `json:"video_url"`
	ThumbnailURL   string                 `json:"thumbnail_url"`
	Controls       bool                   `json:"controls"`
	Transformation transformationResponse `json:"transformation"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

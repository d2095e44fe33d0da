package domain

import "time"

// Catalog-wide rendering target. Caller-supplied dimensions are ignored so
// every published video keeps the portrait reel aspect ratio.
const (
	VideoWidth  = 1080
	VideoHeight = 1920

	MinQuality     = 1
	MaxQuality     = 100
	DefaultQuality = 100
)

// Transformation describes how the player renders a video asset.
type Transformation struct {
	Height  int `json:"height" bson:"height"`
	Width   int `json:"width" bson:"width"`
	Quality int `json:"quality" bson:"quality"`
}

// Video is a published catalog record. The media itself lives in object
// storage; VideoURL and ThumbnailURL are opaque references to it.
type Video struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	VideoURL       string         `json:"video_url"`
	ThumbnailURL   string         `json:"thumbnail_url"`
	Controls       bool           `json:"controls"`
	Transformation Transformation `json:"transformation"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

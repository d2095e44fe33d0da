package ports

import (
	"context"
	"time"
)

// UploadTarget is one presigned destination in object storage. The client
// PUTs the asset to URL; Key is the opaque reference it then submits as the
// video or thumbnail URL of the catalog record.
type UploadTarget struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadCredentials is the hand-off that lets a client upload media directly
// to object storage without the API proxying bytes.
type UploadCredentials struct {
	Video     UploadTarget `json:"video"`
	Thumbnail UploadTarget `json:"thumbnail"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// MediaService produces upload credentials for authenticated clients.
type MediaService interface {
	UploadCredentials(ctx context.Context) (*UploadCredentials, error)
}

package upload

import "time"

type UploadURLResponse struct {
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UploadResponse struct {
	StorageID   string `json:"storage_id"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

package domain

import "errors"

var (
	MessageSuccessPresignUpload = "upload credential issued"
	MessageFailedPresignUpload  = "failed to issue upload credential"

	ErrUnsupportedContentType = errors.New("content type must be one of image/jpeg, image/png, image/webp, image/gif")
)

type (
	PresignUploadRequest struct {
		ContentType string `json:"content_type" validate:"required"`
	}

	PresignUploadResponse struct {
		UploadURL string `json:"upload_url"`
		PublicURL string `json:"public_url"`
		ObjectKey string `json:"object_key"`
		ExpiresIn int    `json:"expires_in"`
	}
)

package upload

import (
	"context"
	"fmt"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/internal/utils/storage"
	"github.com/google/uuid"
)

// extensions for the closed set of accepted image content types
var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type (
	UploadService interface {
		PresignImageUpload(ctx context.Context, req domain.PresignUploadRequest, userTag string) (domain.PresignUploadResponse, error)
	}

	uploadService struct {
		s3 storage.AwsS3
	}
)

func NewUploadService(s3 storage.AwsS3) UploadService {
	return &uploadService{s3: s3}
}

// PresignImageUpload issues a short-lived, single-object write credential
// for a client-direct upload. The object key embeds the owner tag plus a
// random suffix so uploads from different users can never collide.
func (s *uploadService) PresignImageUpload(_ context.Context, req domain.PresignUploadRequest, userTag string) (domain.PresignUploadResponse, error) {
	ext, ok := extByContentType[req.ContentType]
	if !ok {
		return domain.PresignUploadResponse{}, domain.ErrUnsupportedContentType
	}

	objectKey := fmt.Sprintf("recipes/%s-%s%s", userTag, uuid.New().String(), ext)

	uploadURL, err := s.s3.PresignUpload(objectKey, req.ContentType)
	if err != nil {
		return domain.PresignUploadResponse{}, err
	}

	return domain.PresignUploadResponse{
		UploadURL: uploadURL,
		PublicURL: s.s3.GetPublicLinkKey(objectKey),
		ObjectKey: objectKey,
		ExpiresIn: int(storage.PresignExpiry.Seconds()),
	}, nil
}

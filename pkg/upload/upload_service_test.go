package upload

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	presigned []string
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error { return nil }

func (f *fakeS3) PresignUpload(objectKey string, contentType string) (string, error) {
	f.presigned = append(f.presigned, objectKey)
	return "https://presigned.example/" + objectKey, nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.us-east-1.amazonaws.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.s3.us-east-1.amazonaws.com/")
}

const ownerTag = "c4d5e6f7c4d5e6f7c4d5e6f7c4d5e6f7c4d5e6f7c4d5e6f7c4d5e6f7c4d5e6f7"

func TestPresignImageUploadRejectsUnknownContentType(t *testing.T) {
	s3 := &fakeS3{}
	svc := NewUploadService(s3)

	for _, ct := range []string{"application/pdf", "text/html", "", "image/svg+xml"} {
		_, err := svc.PresignImageUpload(context.Background(), domain.PresignUploadRequest{ContentType: ct}, ownerTag)
		assert.ErrorIs(t, err, domain.ErrUnsupportedContentType, "content type %q", ct)
	}
	assert.Empty(t, s3.presigned)
}

func TestPresignImageUploadKeyEmbedsOwner(t *testing.T) {
	s3 := &fakeS3{}
	svc := NewUploadService(s3)

	res, err := svc.PresignImageUpload(context.Background(), domain.PresignUploadRequest{ContentType: "image/png"}, ownerTag)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.ObjectKey, "recipes/"+ownerTag+"-"))
	assert.True(t, strings.HasSuffix(res.ObjectKey, ".png"))
	assert.Equal(t, "https://presigned.example/"+res.ObjectKey, res.UploadURL)
	assert.Equal(t, "https://bucket.s3.us-east-1.amazonaws.com/"+res.ObjectKey, res.PublicURL)
	assert.Equal(t, 300, res.ExpiresIn)
}

func TestPresignImageUploadKeysAreUnique(t *testing.T) {
	svc := NewUploadService(&fakeS3{})

	first, err := svc.PresignImageUpload(context.Background(), domain.PresignUploadRequest{ContentType: "image/jpeg"}, ownerTag)
	require.NoError(t, err)
	second, err := svc.PresignImageUpload(context.Background(), domain.PresignUploadRequest{ContentType: "image/jpeg"}, ownerTag)
	require.NoError(t, err)

	assert.NotEqual(t, first.ObjectKey, second.ObjectKey)
}

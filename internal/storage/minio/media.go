package minio

import (
	"context"
	"fmt"
	"path"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
)

// mediaPrefix — общий префикс ключей медиа объявлений.
const mediaPrefix = "listings"

// UploadMedia загружает файл в бакет под ключом "listings/<uuid>.<ext>"
// и возвращает его публичный URL.
// Тип и размер проверяются по конфигу до обращения к MinIO.
func (s *MediaStorage) UploadMedia(ctx context.Context, file models.MediaFile) (string, error) {
	const op = "storage/minio/media/UploadMedia"

	if err := s.validate(file.ContentType, file.Size); err != nil {
		return "", err
	}

	if file.Body == nil {
		return "", storage.ErrInvalidArgument
	}

	key := newKey(file.ContentType)

	_, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, key, file.Body, file.Size, mclient.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.publicURL(key), nil
}

// MediaUploadURL генерирует presigned PUT URL для прямой загрузки.
// Возвращает также набор заголовков, которые клиент должен передать при PUT,
// и будущий публичный URL объекта для поля media_urls.
func (s *MediaStorage) MediaUploadURL(ctx context.Context, contentType string, contentLength int64) (*models.PresignedUpload, error) {
	const op = "storage/minio/media/MediaUploadURL"

	if err := s.validate(contentType, contentLength); err != nil {
		return nil, err
	}

	key := newKey(contentType)

	u, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.PresignedUpload{
		UploadURL: u.String(),
		Key:       key,
		PublicURL: s.publicURL(key),
		Expires:   s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}, nil
}

func (s *MediaStorage) validate(contentType string, size int64) error {
	if size <= 0 || size > s.cfg.Media.MaxSizeBytes {
		return storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Media.AllowedContentTypes, contentType) {
		return storage.ErrInvalidArgument
	}

	return nil
}

func (s *MediaStorage) publicURL(key string) string {
	return s.publicBase + "/" + key
}

// newKey формирует ключ вида listings/<uuid>.<ext>.
func newKey(contentType string) string {
	return path.Join(mediaPrefix, uuid.NewString()+extFor(contentType))
}

func extFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "video/mp4":
		return ".mp4"
	default:
		return ""
	}
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}

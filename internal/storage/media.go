package storage

import (
	"context"

	"github.com/Coullax/disaster-relief-management/internal/models"
)

// Media — контракт объектного хранилища медиа объявлений.
type Media interface {
	// UploadMedia сохраняет файл и возвращает его публичный URL.
	// Тип и размер проверяются по конфигу (ErrInvalidArgument).
	UploadMedia(ctx context.Context, file models.MediaFile) (string, error)
	// MediaUploadURL выдаёт presigned PUT для прямой загрузки из браузера.
	MediaUploadURL(ctx context.Context, contentType string, contentLength int64) (*models.PresignedUpload, error)
}

// MediaStorage — алиас-обёртка для внедрения зависимости.
type MediaStorage interface {
	Media
}

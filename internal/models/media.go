package models

import (
	"io"
	"time"
)

// MediaFile — файл для загрузки в объектное хранилище.
type MediaFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaUploadResult — итог пакетной загрузки.
// URLs сохраняют порядок входных файлов; Failed — имена незагруженных.
type MediaUploadResult struct {
	URLs   []string
	Failed []string
}

// PresignedUpload — данные для прямой загрузки из браузера.
type PresignedUpload struct {
	UploadURL      string
	Key            string
	PublicURL      string
	Expires        time.Duration
	RequiredHeader map[string]string
}

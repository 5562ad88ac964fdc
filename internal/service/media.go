package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Coullax/disaster-relief-management/internal/metrics"
	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"golang.org/x/sync/errgroup"
)

// UploadMedia загружает файлы объявления с ограниченным параллелизмом
// (media.upload_workers).
//
// Ошибка отдельного файла не прерывает пакет: файл попадает в Failed,
// остальные загружаются. URLs и Failed сохраняют порядок входа.
// Ошибки: ErrInvalidArgument для пустого пакета или больше media.max_files файлов.
func (s *Service) UploadMedia(ctx context.Context, files []models.MediaFile) (*models.MediaUploadResult, error) {
	const op = "service/media/UploadMedia"

	lg := log.From(ctx).With("op", op)

	if len(files) == 0 || len(files) > s.cfg.Media.MaxFiles {
		lg.Warn("invalid argument: media batch size", slog.Int("files", len(files)))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	urls := make([]string, len(files))

	var g errgroup.Group
	g.SetLimit(max(s.cfg.Media.UploadWorkers, 1))

	for i, f := range files {
		g.Go(func() error {
			f.ContentType = strings.ToLower(strings.TrimSpace(f.ContentType))

			u, err := s.media.UploadMedia(ctx, f)
			if err != nil {
				s.metrics.MediaUploads.WithLabelValues(metrics.ResultError).Inc()
				lg.Warn("media_upload_failed",
					slog.String("file", f.Name),
					slog.String("content_type", f.ContentType),
					slog.String("err", err.Error()),
				)
				return nil
			}

			s.metrics.MediaUploads.WithLabelValues(metrics.ResultOK).Inc()
			urls[i] = u
			return nil
		})
	}

	_ = g.Wait()

	res := &models.MediaUploadResult{URLs: []string{}, Failed: []string{}}
	for i, u := range urls {
		if u == "" {
			res.Failed = append(res.Failed, files[i].Name)
			continue
		}

		res.URLs = append(res.URLs, u)
	}

	return res, nil
}

// PresignMedia выдаёт presigned PUT для прямой загрузки одного файла.
// Ошибки: ErrInvalidArgument (тип/размер), ErrInternal.
func (s *Service) PresignMedia(ctx context.Context, contentType string, contentLength int64) (*models.PresignedUpload, error) {
	const op = "service/media/PresignMedia"

	contentType = strings.ToLower(strings.TrimSpace(contentType))

	up, err := s.media.MediaUploadURL(ctx, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		log.From(ctx).Error("media_presign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return up, nil
}

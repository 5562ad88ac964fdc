package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Coullax/disaster-relief-management/internal/metrics"
	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func mediaFile(name string) models.MediaFile {
	return models.MediaFile{
		Name:        name,
		ContentType: " IMAGE/PNG ",
		Size:        3,
		Body:        strings.NewReader("png"),
	}
}

func TestService_UploadMedia_BatchSize(t *testing.T) {
	s, d := newServiceWithMocks(t)
	defer d.ctrl.Finish()

	_, err := s.UploadMedia(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	files := []models.MediaFile{mediaFile("1"), mediaFile("2"), mediaFile("3"), mediaFile("4")}
	_, err = s.UploadMedia(context.Background(), files)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Ошибка одного файла не прерывает пакет; порядок URL сохраняется.
func TestService_UploadMedia_ContinueOnError(t *testing.T) {
	s, d := newServiceWithMocks(t)
	defer d.ctrl.Finish()

	d.media.EXPECT().UploadMedia(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.MediaFile) (string, error) {
			if f.ContentType != "image/png" {
				return "", errors.New("content type not normalised")
			}
			if f.Name == "broken.png" {
				return "", storage.ErrInvalidArgument
			}
			return "https://cdn.local/" + f.Name, nil
		}).Times(3)

	files := []models.MediaFile{mediaFile("a.png"), mediaFile("broken.png"), mediaFile("c.png")}

	res, err := s.UploadMedia(context.Background(), files)
	require.NoError(t, err)
	require.Equal(t, []string{"https://cdn.local/a.png", "https://cdn.local/c.png"}, res.URLs)
	require.Equal(t, []string{"broken.png"}, res.Failed)
	require.Equal(t, 2.0, testutil.ToFloat64(s.metrics.MediaUploads.WithLabelValues(metrics.ResultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(s.metrics.MediaUploads.WithLabelValues(metrics.ResultError)))
}

// Все файлы упали: пустые, но не nil списки.
func TestService_UploadMedia_AllFailed(t *testing.T) {
	s, d := newServiceWithMocks(t)
	defer d.ctrl.Finish()

	d.media.EXPECT().UploadMedia(gomock.Any(), gomock.Any()).Return("", errors.New("s3 down")).Times(2)

	res, err := s.UploadMedia(context.Background(), []models.MediaFile{mediaFile("a"), mediaFile("b")})
	require.NoError(t, err)
	require.NotNil(t, res.URLs)
	require.Empty(t, res.URLs)
	require.Equal(t, []string{"a", "b"}, res.Failed)
}

func TestService_PresignMedia(t *testing.T) {
	s, d := newServiceWithMocks(t)
	defer d.ctrl.Finish()

	up := &models.PresignedUpload{UploadURL: "http://minio/put", Key: "listings/x.png"}
	d.media.EXPECT().MediaUploadURL(gomock.Any(), "image/png", int64(10)).Return(up, nil)

	got, err := s.PresignMedia(context.Background(), " Image/PNG ", 10)
	require.NoError(t, err)
	require.Same(t, up, got)

	d.media.EXPECT().MediaUploadURL(gomock.Any(), "text/html", int64(10)).Return(nil, storage.ErrInvalidArgument)
	_, err = s.PresignMedia(context.Background(), "text/html", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)

	d.media.EXPECT().MediaUploadURL(gomock.Any(), "image/png", int64(10)).Return(nil, errors.New("s3 down"))
	_, err = s.PresignMedia(context.Background(), "image/png", 10)
	require.ErrorIs(t, err, ErrInternal)
}

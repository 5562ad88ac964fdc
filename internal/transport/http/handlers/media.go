package handlers

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/Coullax/disaster-relief-management/internal/transport/http/dto"
	apierrors "github.com/Coullax/disaster-relief-management/internal/transport/http/errors"
)

// multipartMemory — часть формы, которая держится в памяти; остальное во временных файлах.
const multipartMemory = 8 << 20

// UploadMedia принимает multipart/form-data с полями "files".
// Части, которые не удалось открыть, не загружаются и дописываются в конец failed.
func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("multipart form"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files, unreadable, closeAll := openParts(r.Context(), r.MultipartForm.File["files"])
	defer closeAll()

	if len(files) == 0 && len(unreadable) > 0 {
		writeJSON(w, http.StatusOK, dto.MediaUploadResponse{URLs: []string{}, Failed: unreadable})
		return
	}

	res, err := h.Svc.UploadMedia(r.Context(), files)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	res.Failed = append(res.Failed, unreadable...)

	writeJSON(w, http.StatusOK, dto.MediaUploadFromModel(res))
}

// openParts открывает части формы. Имена нечитаемых частей возвращаются в unreadable;
// closeAll закрывает всё открытое.
func openParts(ctx context.Context, headers []*multipart.FileHeader) (files []models.MediaFile, unreadable []string, closeAll func()) {
	files = make([]models.MediaFile, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			log.From(ctx).Warn("media_part_open_failed",
				slog.String("file", fh.Filename),
				slog.String("err", err.Error()),
			)
			unreadable = append(unreadable, fh.Filename)
			continue
		}
		opened = append(opened, f)

		files = append(files, models.MediaFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}

	return files, unreadable, func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
}

func (h *Handlers) PresignMedia(w http.ResponseWriter, r *http.Request) {
	var in dto.PresignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("body"))
		return
	}

	up, err := h.Svc.PresignMedia(r.Context(), in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PresignFromModel(up))
}

func (h *Handlers) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("lat"))
		return
	}

	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("lng"))
		return
	}

	loc, err := h.Svc.ReverseGeocode(r.Context(), lat, lng)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.GeoFromModel(loc))
}

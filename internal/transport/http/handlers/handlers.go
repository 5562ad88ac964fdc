package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Coullax/disaster-relief-management/internal/service"
)

// Handlers агрегирует зависимости REST-обработчиков.
type Handlers struct {
	Svc *service.Service
	// MaxUploadBytes ограничивает тело multipart-запроса POST /media.
	MaxUploadBytes int64
}

func New(svc *service.Service, maxUploadBytes int64) *Handlers {
	return &Handlers{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга запроса.
func errInvalidArgument(what string) error {
	return fmt.Errorf("handlers: %s: %w", what, service.ErrInvalidArgument)
}

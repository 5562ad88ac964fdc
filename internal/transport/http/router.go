package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Coullax/disaster-relief-management/internal/metrics"
	"github.com/Coullax/disaster-relief-management/internal/service"
	"github.com/Coullax/disaster-relief-management/internal/transport/http/handlers"
	"github.com/Coullax/disaster-relief-management/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Timeout        time.Duration
	BasePath       string // например, "/api"; если пустой — роуты регистрируются на корне.
	MaxUploadBytes int64
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(),          // до логирования: request_id попадает в логгер
		middleware.Logging(opts.Logger), // request-scoped логгер в контексте
		middleware.Metrics(opts.Metrics),
		middleware.AuthBearer(svc), // сессия в контексте; битый токен -> 401
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	h := handlers.New(svc, opts.MaxUploadBytes)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth
	r.Post("/auth/otp", h.RequestCode)
	r.Post("/auth/verify", h.VerifyCode)

	// listings
	r.Get("/listings", h.ListListings)
	r.Post("/listings", h.CreateListing)
	r.Get("/listings/{id}", h.GetListing)
	r.Get("/categories", h.Categories)

	// me
	r.Get("/me", h.Me)
	r.Get("/me/listings", h.MyListings)

	// media & geo
	r.Post("/media", h.UploadMedia)
	r.Post("/media/presign", h.PresignMedia)
	r.Get("/geocode/reverse", h.ReverseGeocode)
}

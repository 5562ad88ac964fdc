// service содержит бизнес-логику relief-board:
// определение профиля отправителя, публикацию объявлений со статусом,
// публичную ленту, счётчик просмотров, медиа, геокодирование и OTP-вход.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; сессия передаётся явно
//     (*models.Session во входных структурах, nil — анонимный запрос);
//   - единственное фоновое состояние — счётчик незавершённых инкрементов
//     просмотров, который дожидается Wait();
//   - ошибки хранилищ маппятся в сентинел-ошибки ниже, транспорт
//     переводит их в HTTP-коды.
package service

import (
	"errors"
	"sync"
	"time"

	"github.com/Coullax/disaster-relief-management/internal/cache"
	"github.com/Coullax/disaster-relief-management/internal/config"
	"github.com/Coullax/disaster-relief-management/internal/geo"
	"github.com/Coullax/disaster-relief-management/internal/mailer"
	"github.com/Coullax/disaster-relief-management/internal/metrics"
	"github.com/Coullax/disaster-relief-management/internal/storage"
)

var (
	// ErrInvalidArgument — неверные входные параметры. HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность отсутствует. HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrProfileCreate — не удалось определить или создать профиль отправителя.
	// Объявление в этом случае не создаётся. HTTP 500.
	ErrProfileCreate = errors.New("failed to create user profile")
	// ErrListingCreate — не удалось сохранить объявление. HTTP 500.
	ErrListingCreate = errors.New("failed to create listing")
	// ErrInternal — прочие ошибки хранилищ/контекста. HTTP 500.
	ErrInternal = errors.New("internal")
	// ErrUnauthenticated — нет сессии или токен недействителен. HTTP 401.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidCode — код входа неверен, истёк или исчерпаны попытки. HTTP 401.
	ErrInvalidCode = errors.New("invalid or expired code")
	// ErrTooManyRequests — повторный запрос кода раньше интервала. HTTP 429.
	ErrTooManyRequests = errors.New("too many requests")
)

// Deps — внешние зависимости сервиса.
// Geo и Cache опциональны: nil отключает геокодер и кэш ленты.
type Deps struct {
	Profiles storage.ProfilesStorage
	Listings storage.ListingsStorage
	Media    storage.MediaStorage
	OTP      storage.OTPStorage
	Sender   mailer.Sender
	Geo      geo.Resolver
	Cache    cache.FeedCache
	Metrics  *metrics.Metrics
}

// Service описывает бизнес-логику relief-board.
type Service struct {
	profiles storage.ProfilesStorage
	listings storage.ListingsStorage
	media    storage.MediaStorage
	otp      storage.OTPStorage
	sender   mailer.Sender
	geo      geo.Resolver
	cache    cache.FeedCache
	metrics  *metrics.Metrics
	cfg      *config.Config

	// views — незавершённые фоновые инкременты просмотров.
	views sync.WaitGroup
	now   func() time.Time
}

// New создаёт новый экземпляр Service.
func New(cfg *config.Config, deps Deps) *Service {
	m := deps.Metrics
	if m == nil {
		m = metrics.Nop()
	}

	return &Service{
		profiles: deps.Profiles,
		listings: deps.Listings,
		media:    deps.Media,
		otp:      deps.OTP,
		sender:   deps.Sender,
		geo:      deps.Geo,
		cache:    deps.Cache,
		metrics:  m,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Wait дожидается завершения фоновых инкрементов просмотров.
// Вызывается при остановке приложения и в тестах.
func (s *Service) Wait() {
	s.views.Wait()
}

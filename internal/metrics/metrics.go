// metrics содержит прикладные Prometheus-счётчики relief-board.
// gRPC-метрики регистрирует go-grpc-prometheus в main.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Метки result.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultHit   = "hit"
	ResultMiss  = "miss"
)

// Metrics — набор счётчиков сервиса.
type Metrics struct {
	ListingsCreated *prometheus.CounterVec
	ListingViews    *prometheus.CounterVec
	MediaUploads    *prometheus.CounterVec
	FeedCache       *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
}

// New создаёт счётчики и регистрирует их в reg.
// reg == nil — счётчики не регистрируются (тесты).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ListingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relief_listings_created_total",
			Help: "Created listings by assigned status.",
		}, []string{"status"}),
		ListingViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relief_listing_views_total",
			Help: "View counter increments by result.",
		}, []string{"result"}),
		MediaUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relief_media_uploads_total",
			Help: "Uploaded media files by result.",
		}, []string{"result"}),
		FeedCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relief_feed_cache_total",
			Help: "Feed cache lookups by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relief_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
	}

	if reg != nil {
		reg.MustRegister(m.ListingsCreated, m.ListingViews, m.MediaUploads, m.FeedCache, m.HTTPRequests)
	}

	return m
}

// Nop — счётчики без регистрации.
func Nop() *Metrics { return New(nil) }

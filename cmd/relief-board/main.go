package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Coullax/disaster-relief-management/internal/cache"
	"github.com/Coullax/disaster-relief-management/internal/config"
	"github.com/Coullax/disaster-relief-management/internal/geo"
	"github.com/Coullax/disaster-relief-management/internal/mailer"
	"github.com/Coullax/disaster-relief-management/internal/metrics"
	"github.com/Coullax/disaster-relief-management/internal/service"
	"github.com/Coullax/disaster-relief-management/internal/storage/minio"
	"github.com/Coullax/disaster-relief-management/internal/storage/mongo"
	"github.com/Coullax/disaster-relief-management/internal/storage/postgres"
	grpctransport "github.com/Coullax/disaster-relief-management/internal/transport/grpc"
	httptransport "github.com/Coullax/disaster-relief-management/internal/transport/http"

	"google.golang.org/grpc"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting relief-board", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// closers выполняются в обратном порядке при остановке.
	var closers []func()
	fail := func(event string, err error) {
		log.Error(event, slog.String("err", err.Error()))
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		rootCancel()
		os.Exit(1)
	}

	initCtx, initCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer initCancel()

	pg, err := postgres.New(initCtx, cfg.DB.URL)
	if err != nil {
		fail("postgres_connect_failed", err)
	}
	closers = append(closers, pg.Close)
	log.Info("postgres_connected")

	if !cfg.DB.SkipMigrations {
		if err := pg.Migrate(initCtx); err != nil {
			fail("migrations_failed", err)
		}
		log.Info("migrations_applied")
	}

	mg, err := mongo.New(initCtx, cfg.Mongo.URL)
	if err != nil {
		fail("mongo_connect_failed", err)
	}
	closers = append(closers, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mg.Close(ctx)
	})
	log.Info("mongo_connected")

	media, err := minio.New(initCtx, cfg)
	if err != nil {
		fail("minio_connect_failed", err)
	}
	log.Info("minio_connected", slog.String("bucket", cfg.S3.Bucket))

	var feedCache cache.FeedCache
	if cfg.Redis.URL != "" {
		c, err := cache.NewRedisCache(initCtx, cfg.Redis.URL, cfg.Redis.Prefix)
		if err != nil {
			fail("redis_connect_failed", err)
		}
		feedCache = c
		closers = append(closers, func() { _ = c.Close() })
		log.Info("redis_connected")
	} else {
		log.Info("feed_cache_disabled")
	}

	var resolver geo.Resolver
	if cfg.Geo.GoogleMapsAPIKey != "" {
		r, err := geo.NewGoogleResolver(cfg.Geo.GoogleMapsAPIKey, cfg.Geo.Language)
		if err != nil {
			fail("geocoder_init_failed", err)
		}
		resolver = r
	} else {
		log.Info("geocoder_disabled")
	}

	var sender mailer.Sender = mailer.LogSender{}
	if cfg.SMTP.Host != "" {
		sender = mailer.NewSMTPSender(cfg.SMTP)
	} else {
		log.Warn("smtp_disabled_codes_logged")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	svc := service.New(cfg, service.Deps{
		Profiles: pg,
		Listings: pg,
		Media:    media,
		OTP:      mg,
		Sender:   sender,
		Geo:      resolver,
		Cache:    feedCache,
		Metrics:  m,
	})
	log.Info("service_initialized")

	// HTTP: API + readiness/liveness/metrics.
	var ready atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if !ready.Load() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pg.Ping(ctx); err != nil {
			http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
			return
		}
		if err := mg.Ping(ctx); err != nil {
			http.Error(w, "mongo unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/api/", httptransport.NewRouter(svc, httptransport.Options{
		Logger:         log,
		Metrics:        m,
		Timeout:        cfg.Timeouts.Service,
		BasePath:       "/api",
		MaxUploadBytes: cfg.Media.MaxSizeBytes*int64(cfg.Media.MaxFiles) + 1<<20,
	}))

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", "addr", httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErrCh <- err
		}
		close(httpErrCh)
	}()

	// gRPC: health-проверки для оркестратора.
	grpcSrv := grpctransport.NewServer(grpctransport.Options{
		Logger:     log,
		Timeout:    cfg.Timeouts.Service,
		Reflection: cfg.Env == envLocal || cfg.Env == envDev,
	})

	grpcAddr := cfg.GRPC.Addr()
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		_ = httpSrv.Close()
		fail("grpc_listen_failed", err)
	}
	log.Info("grpc_listen_start", slog.String("addr", grpcAddr))

	grpcErrCh := make(chan error, 1)
	go func() {
		if err := grpcSrv.GRPC.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			grpcErrCh <- err
		}
		close(grpcErrCh)
	}()

	grpcSrv.SetReady(true)
	ready.Store(true)

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-httpErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	case err := <-grpcErrCh:
		if err != nil {
			log.Error("grpc_serve_failed", slog.String("err", err.Error()))
		}
	}

	grpcSrv.SetReady(false)
	ready.Store(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
		_ = httpSrv.Close()
	}
	log.Info("http_stopped")

	done := make(chan struct{})
	go func() {
		grpcSrv.GRPC.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("grpc_stopped")
	case <-shutdownCtx.Done():
		log.Warn("grpc_force_stop")
		grpcSrv.GRPC.Stop()
	}

	// Фоновые инкременты просмотров успевают записаться до закрытия пула.
	svc.Wait()

	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}

	log.Info("service_stopped")
}

// setupLogger выбирает формат и уровень логов по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

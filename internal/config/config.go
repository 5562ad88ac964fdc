// config предоставляет структуру конфигурации relief-board и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	DB       DBConfig       `yaml:"db"`
	S3       S3Config       `yaml:"s3"`
	Media    MediaConfig    `yaml:"media"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
	Cache    CacheConfig    `yaml:"cache"`
	Auth     AuthConfig     `yaml:"auth"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Geo      GeoConfig      `yaml:"geo"`
	Listings ListingsConfig `yaml:"listings"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// TimeoutConfig — таймаут обработки запроса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// HTTPConfig — публичный REST-сервер (API + /metrics + /livez + /healthz).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// GRPCConfig — gRPC-сервер health-проверок.
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50070"`
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string { return net.JoinHostPort(g.Host, g.Port) }

// DBConfig — подключение к PostgreSQL.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	// SkipMigrations отключает применение встроенных миграций при старте.
	SkipMigrations bool `yaml:"skip_migrations" env:"DB_SKIP_MIGRATIONS"`
}

// S3Config — объектное хранилище медиа (MinIO/S3-совместимое).
type S3Config struct {
	Endpoint      string        `yaml:"endpoint" env:"S3_ENDPOINT" env-default:"http://localhost:9000"`
	RootUser      string        `yaml:"root_user" env:"S3_ROOT_USER"`
	RootPassword  string        `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Bucket        string        `yaml:"bucket" env:"S3_BUCKET" env-default:"listings"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
	PresignTTL    time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"15m"`
}

// MediaConfig — ограничения на загружаемые файлы.
type MediaConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"MEDIA_MAX_SIZE_BYTES" env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"MEDIA_ALLOWED_CONTENT_TYPES" env-default:"image/jpeg,image/png,image/webp,video/mp4"`
	MaxFiles            int      `yaml:"max_files" env:"MEDIA_MAX_FILES" env-default:"10"`
	UploadWorkers       int      `yaml:"upload_workers" env:"MEDIA_UPLOAD_WORKERS" env-default:"4"`
}

// MongoConfig — хранилище OTP-челленджей.
type MongoConfig struct {
	URL string `yaml:"url" env:"MONGO_URL" env-required:"true"`
}

// RedisConfig — кэш ленты. Пустой URL отключает кэш.
type RedisConfig struct {
	URL    string `yaml:"url" env:"REDIS_URL"`
	Prefix string `yaml:"prefix" env:"REDIS_PREFIX" env-default:"relief:feed:"`
}

// CacheConfig — параметры кэширования ленты.
type CacheConfig struct {
	FeedTTL time.Duration `yaml:"feed_ttl" env:"CACHE_FEED_TTL" env-default:"30s"`
}

// AuthConfig — OTP-вход и выпуск сессионных JWT.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	SessionTTL        time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"168h"`
	Issuer            string        `yaml:"issuer" env:"ISSUER" env-default:"relief-board"`
	Audience          []string      `yaml:"audience" env:"AUDIENCE" env-default:"relief-board-web"`
	OTPTTL            time.Duration `yaml:"otp_ttl" env:"OTP_TTL" env-default:"10m"`
	OTPLength         int           `yaml:"otp_length" env:"OTP_LENGTH" env-default:"6"`
	OTPMaxAttempts    int           `yaml:"otp_max_attempts" env:"OTP_MAX_ATTEMPTS" env-default:"5"`
	OTPResendInterval time.Duration `yaml:"otp_resend_interval" env:"OTP_RESEND_INTERVAL" env-default:"60s"`
}

// SMTPConfig — доставка кодов. Пустой Host означает логирование кода вместо отправки.
type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM" env-default:"no-reply@relief.local"`
}

// Addr возвращает адрес в формате host:port.
func (s SMTPConfig) Addr() string { return net.JoinHostPort(s.Host, s.Port) }

// GeoConfig — обратное геокодирование. Без ключа используется только форматирование координат.
type GeoConfig struct {
	GoogleMapsAPIKey string        `yaml:"google_maps_api_key" env:"GOOGLE_MAPS_API_KEY"`
	Timeout          time.Duration `yaml:"timeout" env:"GEO_TIMEOUT" env-default:"5s"`
	Language         string        `yaml:"language" env:"GEO_LANGUAGE" env-default:"en"`
}

// ListingsConfig — правила публикации и чтения объявлений.
type ListingsConfig struct {
	Categories   []string      `yaml:"categories" env:"LISTING_CATEGORIES" env-default:"food,medical,shelter,transport,business,education,financial,legal,veterinary,other"`
	DefaultLimit int32         `yaml:"default_limit" env:"LISTING_DEFAULT_LIMIT" env-default:"10"`
	MaxLimit     int32         `yaml:"max_limit" env:"LISTING_MAX_LIMIT" env-default:"100"`
	ViewTimeout  time.Duration `yaml:"view_timeout" env:"LISTING_VIEW_TIMEOUT" env-default:"3s"`
}

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return finalize(&cfg)
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return finalize(&cfg)
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return finalize(&cfg)
}

func finalize(cfg *Config) (*Config, error) {
	cfg.Listings.Categories = normalizeList(cfg.Listings.Categories, true)
	cfg.Media.AllowedContentTypes = normalizeList(cfg.Media.AllowedContentTypes, true)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет инварианты, которые cleanenv выразить не может.
func (c *Config) validate() error {
	switch {
	case len(c.Listings.Categories) == 0:
		return fmt.Errorf("config: listings.categories must not be empty")
	case c.Listings.DefaultLimit <= 0:
		return fmt.Errorf("config: listings.default_limit must be positive")
	case c.Listings.MaxLimit < c.Listings.DefaultLimit:
		return fmt.Errorf("config: listings.max_limit must be >= default_limit")
	case c.Auth.OTPLength < 4 || c.Auth.OTPLength > 10:
		return fmt.Errorf("config: auth.otp_length must be within [4, 10]")
	case c.Auth.OTPMaxAttempts <= 0:
		return fmt.Errorf("config: auth.otp_max_attempts must be positive")
	case c.Auth.OTPTTL <= 0 || c.Auth.SessionTTL <= 0:
		return fmt.Errorf("config: auth ttl values must be positive")
	case c.Media.MaxSizeBytes <= 0:
		return fmt.Errorf("config: media.max_size_bytes must be positive")
	case c.Media.MaxFiles <= 0:
		return fmt.Errorf("config: media.max_files must be positive")
	case c.Listings.ViewTimeout <= 0:
		return fmt.Errorf("config: listings.view_timeout must be positive")
	case c.Cache.FeedTTL <= 0:
		return fmt.Errorf("config: cache.feed_ttl must be positive")
	}

	if c.Media.UploadWorkers <= 0 {
		c.Media.UploadWorkers = 1
	}

	return nil
}

// normalizeList обрезает пробелы, убирает пустые значения и дубликаты.
func normalizeList(in []string, lower bool) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))

	for _, v := range in {
		v = strings.TrimSpace(v)
		if lower {
			v = strings.ToLower(v)
		}

		if v == "" {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// HasCategory сообщает, входит ли категория в allow-list.
func (l ListingsConfig) HasCategory(category string) bool {
	for _, c := range l.Categories {
		if c == category {
			return true
		}
	}

	return false
}

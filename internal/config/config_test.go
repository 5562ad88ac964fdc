package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Тесты загрузки конфигурации (config.go).
//
// Покрытие:
//   - приоритет источников: --config > CONFIG_PATH > ./local.yaml > ENV;
//   - overlay ENV поверх YAML;
//   - дефолты cleanenv (лимиты, категории, TTL);
//   - нормализация списков (trim/lower/dedup) и validate().
//
// Тесты с t.Setenv/chdir намеренно не используют t.Parallel().

// writeFile — утилита записи временного файла конфигурации.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

// chdir — смена текущего рабочего каталога с авто-возвратом.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

const sampleYAML = `
env: "prod"
http:
  host: "0.0.0.0"
  port: "8081"
grpc:
  host: "127.0.0.1"
  port: "50071"
db:
  url: "postgres://u:p@db:5432/relief?sslmode=disable"
  skip_migrations: true
s3:
  endpoint: "http://minio:9000"
  bucket: "media"
  public_base_url: "http://cdn.local/media"
  presign_ttl: "5m"
media:
  max_size_bytes: 2048
  allowed_content_types: ["image/png", " IMAGE/JPEG ", "image/png"]
  max_files: 3
  upload_workers: 2
mongo:
  url: "mongodb://mongo:27017/relief"
redis:
  url: "redis://redis:6379/0"
cache:
  feed_ttl: "1m"
auth:
  jwt_secret: "secret"
  session_ttl: "24h"
  otp_ttl: "5m"
  otp_length: 6
  otp_max_attempts: 3
geo:
  google_maps_api_key: "key"
  timeout: "2s"
listings:
  categories: ["Food", "shelter", "  other  ", ""]
  default_limit: 12
  max_limit: 50
  view_timeout: "1s"
timeouts:
  service: "3s"
`

const minimalYAML = `
env: "dev"
db:
  url: "postgres://localhost/relief"
mongo:
  url: "mongodb://localhost:27017"
auth:
  jwt_secret: "s"
`

const brokenYAML = `
env: [unclosed
`

func TestHTTPConfig_Addr(t *testing.T) {
	t.Parallel()
	require.Equal(t, "0.0.0.0:8080", HTTPConfig{Host: "0.0.0.0", Port: "8080"}.Addr())
	require.Equal(t, "127.0.0.1:50070", GRPCConfig{Host: "127.0.0.1", Port: "50070"}.Addr())
}

func TestLoad_WithExplicitPath_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "0.0.0.0:8081", cfg.HTTP.Addr())
	require.Equal(t, "127.0.0.1:50071", cfg.GRPC.Addr())
	require.True(t, cfg.DB.SkipMigrations)
	require.Equal(t, "media", cfg.S3.Bucket)
	require.Equal(t, 5*time.Minute, cfg.S3.PresignTTL)
	require.Equal(t, []string{"image/png", "image/jpeg"}, cfg.Media.AllowedContentTypes)
	require.Equal(t, 2, cfg.Media.UploadWorkers)
	require.Equal(t, "redis://redis:6379/0", cfg.Redis.URL)
	require.Equal(t, time.Minute, cfg.Cache.FeedTTL)
	require.Equal(t, 3, cfg.Auth.OTPMaxAttempts)
	require.Equal(t, 2*time.Second, cfg.Geo.Timeout)
	require.Equal(t, []string{"food", "shelter", "other"}, cfg.Listings.Categories)
	require.EqualValues(t, 12, cfg.Listings.DefaultLimit)
	require.EqualValues(t, 50, cfg.Listings.MaxLimit)
	require.Equal(t, 3*time.Second, cfg.Timeouts.Service)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "min.yaml", minimalYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.False(t, cfg.DB.SkipMigrations)
	require.EqualValues(t, 10, cfg.Listings.DefaultLimit)
	require.EqualValues(t, 100, cfg.Listings.MaxLimit)
	require.Contains(t, cfg.Listings.Categories, "shelter")
	require.Contains(t, cfg.Listings.Categories, "veterinary")
	require.Equal(t, 6, cfg.Auth.OTPLength)
	require.Equal(t, "relief-board", cfg.Auth.Issuer)
	require.Empty(t, cfg.Redis.URL)
	require.Empty(t, cfg.Geo.GoogleMapsAPIKey)
}

func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "stat failed")
}

func TestLoad_WithCONFIG_PATH_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "from_env_path.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
}

func TestLoad_WithLocalYAML_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, ".", "local.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
}

// Явный путь важнее CONFIG_PATH и local.yaml.
func TestLoad_Priority_ExplicitWinsOverEnvAndLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, ".", "local.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", writeFile(t, dir, "env.yaml", sampleYAML))

	explicit := writeFile(t, dir, "explicit.yaml", minimalYAML)

	cfg, err := Load(explicit)
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
}

// ENV накладывается поверх значений из YAML.
func TestLoad_EnvOverlay(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("LISTING_DEFAULT_LIMIT", "20")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.HTTP.Port)
	require.EqualValues(t, 20, cfg.Listings.DefaultLimit)
}

// Только ENV: без файлов, обязательные поля заданы переменными.
func TestLoad_EnvOnly(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "postgres://env/relief")
	t.Setenv("MONGO_URL", "mongodb://env:27017")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "postgres://env/relief", cfg.DB.URL)
	require.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoad_Validate_Fails(t *testing.T) {
	cases := []struct {
		name  string
		extra string
		want  string
	}{
		{"limits", "listings:\n  default_limit: 20\n  max_limit: 5\n", "max_limit"},
		{"negative view timeout", "listings:\n  view_timeout: \"-1s\"\n", "view_timeout"},
		{"negative feed ttl", "cache:\n  feed_ttl: \"-1s\"\n", "feed_ttl"},
		{"short otp", "  otp_length: -1\n", "otp_length"},
		{"long otp", "  otp_length: 19\n", "otp_length"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// minimalYAML заканчивается секцией auth: строки с отступом дописываются в неё.
			cfgPath := writeFile(t, t.TempDir(), "bad.yaml", minimalYAML+tc.extra)

			_, err := Load(cfgPath)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

// Нулевые значения из YAML заменяются дефолтами cleanenv, но явный ноль из ENV
// доходит до validate().
func TestLoad_Validate_ZeroFromEnv(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "min.yaml", minimalYAML)

	for env, want := range map[string]string{
		"LISTING_VIEW_TIMEOUT": "view_timeout",
		"CACHE_FEED_TTL":       "feed_ttl",
	} {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, "0s")

			_, err := Load(cfgPath)
			require.Error(t, err)
			require.Contains(t, err.Error(), want)
		})
	}
}

func TestListingsConfig_HasCategory(t *testing.T) {
	t.Parallel()
	l := ListingsConfig{Categories: []string{"food", "shelter"}}
	require.True(t, l.HasCategory("shelter"))
	require.False(t, l.HasCategory("weapons"))
	require.False(t, l.HasCategory(""))
}

func TestMustLoad_Panics(t *testing.T) {
	require.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yaml")) })
}

// minio предоставляет реализацию storage.MediaStorage на базе MinIO/S3.
// minio.go - конструктор клиента MinIO: нормализует endpoint,
// настраивает Secure/creds и проверяет наличие целевого бакета.
// media.go — реализация методов Media поверх клиента MinIO:
//   - серверная загрузка файла объявления;
//   - генерация presigned PUT URL для прямой загрузки из браузера.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Coullax/disaster-relief-management/internal/config"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaStorage — адаптер MinIO для медиа объявлений.
// Хранит ссылку на конфиг и minio-go клиент.
type MediaStorage struct {
	cfg    *config.Config
	client *mclient.Client
	// publicBase — префикс публичных URL без завершающего "/".
	publicBase string
}

// New создает и инициализирует клиент MinIO.
// Делает endpoint-перенастройку (убирает схему), подбирает Secure по схеме
// и выполняет fail-fast-проверку доступности бакета.
func New(ctx context.Context, cfg *config.Config) (*MediaStorage, error) {
	const op = "storage/minio/New"

	endpoint := cfg.S3.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.RootUser, cfg.S3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.S3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.S3.Bucket)
	}

	return &MediaStorage{
		cfg:        cfg,
		client:     client,
		publicBase: publicBase(cfg, endpoint, secure),
	}, nil
}

// publicBase: PublicBaseURL из конфига, иначе path-style адрес бакета на самом endpoint.
func publicBase(cfg *config.Config, host string, secure bool) string {
	if cfg.S3.PublicBaseURL != "" {
		return strings.TrimRight(cfg.S3.PublicBaseURL, "/")
	}

	scheme := "http"
	if secure {
		scheme = "https"
	}

	return scheme + "://" + host + "/" + cfg.S3.Bucket
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.MediaStorage = (*MediaStorage)(nil)

// cache содержит кэш страниц публичной ленты поверх Redis.
//
// Инвалидация через счётчик поколений: ключ страницы включает текущее
// поколение, Invalidate его увеличивает, старые записи доживают до TTL.
package cache

//go:generate mockgen -destination=../../mocks/cache.go -package=mocks github.com/Coullax/disaster-relief-management/internal/cache FeedCache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/redis/go-redis/v9"
)

// FeedCache — минимальный контракт кэша ленты.
type FeedCache interface {
	// Get возвращает страницу, поколение, в котором её искали, и признак попадания.
	Get(ctx context.Context, filter models.ListingFilter) (*models.ListingPage, int64, bool, error)
	// Set сохраняет страницу с TTL под поколением gen, полученным из Get до чтения из БД.
	// Если между Get и Set прошёл Invalidate, запись ляжет в устаревшее поколение
	// и не будет прочитана.
	Set(ctx context.Context, gen int64, filter models.ListingFilter, page *models.ListingPage, ttl time.Duration) error
	// Invalidate делает недоступными все ранее сохранённые страницы.
	Invalidate(ctx context.Context) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "relief:feed:".
func NewRedisCache(ctx context.Context, redisURL, prefix string) (FeedCache, error) {
	if prefix == "" {
		prefix = "relief:feed:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) genKey() string { return c.prefix + "gen" }

// generation возвращает текущее поколение; отсутствие ключа — поколение 0.
func (c *redisCache) generation(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, c.genKey()).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(v, 10, 64)
}

func (c *redisCache) pageKey(gen int64, filter models.ListingFilter) string {
	return fmt.Sprintf("%sv%d:%s", c.prefix, gen, FilterKey(filter))
}

func (c *redisCache) Get(ctx context.Context, filter models.ListingFilter) (*models.ListingPage, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	raw, err := c.rdb.Get(ctx, c.pageKey(gen, filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}

	if err != nil {
		return nil, gen, false, err
	}

	var page models.ListingPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, gen, false, err
	}

	return &page, gen, true, nil
}

func (c *redisCache) Set(ctx context.Context, gen int64, filter models.ListingFilter, page *models.ListingPage, ttl time.Duration) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.pageKey(gen, filter), raw, ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, c.genKey()).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }

// FilterKey — канонический вид нормализованного фильтра.
// Значения фильтров приводятся к нижнему регистру: сравнение в БД регистронезависимое
// для search/location, а category/type хранятся в нижнем регистре.
func FilterKey(f models.ListingFilter) string {
	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == models.FilterAll {
			return ""
		}

		return s
	}

	return fmt.Sprintf("p=%d&l=%d&s=%s&c=%s&loc=%s&t=%s",
		f.Page, f.Limit,
		escapeKey(norm(f.Search)),
		escapeKey(norm(f.Category)),
		escapeKey(norm(f.Location)),
		escapeKey(norm(f.Type)),
	)
}

var keyEscaper = strings.NewReplacer("%", "%25", "&", "%26", "=", "%3D")

func escapeKey(s string) string { return keyEscaper.Replace(s) }

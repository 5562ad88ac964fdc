package storage

import (
	"context"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/google/uuid"
)

// Listings — контракт репозитория объявлений.
type Listings interface {
	// CreateListing вставляет объявление и возвращает его с серверными полями.
	CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error)
	// CountListingsByUser считает объявления профиля в любом статусе.
	CountListingsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	// ListListings возвращает страницу активных объявлений и общее число совпадений.
	// Порядок: view_count ASC, created_at DESC.
	ListListings(ctx context.Context, filter models.ListingFilter) (*models.ListingPage, error)
	// ListingByID возвращает объявление с публичными данными владельца.
	ListingByID(ctx context.Context, id uuid.UUID) (*models.ListingDetails, error)
	// ListingsByUser возвращает все объявления профиля, новые первыми.
	ListingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Listing, error)
	// IncrementViewCount атомарно увеличивает счётчик просмотров на 1.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

// ListingsStorage — верхнеуровневый интерфейс хранилища объявлений.
type ListingsStorage interface {
	Listings
}

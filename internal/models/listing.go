package models

import (
	"time"

	"github.com/google/uuid"
)

// ListingType — «нужна помощь» или «предлагаю помощь».
type ListingType string

const (
	ListingTypeNeed  ListingType = "need"
	ListingTypeOffer ListingType = "offer"
)

// Valid сообщает, является ли значение допустимым типом объявления.
func (t ListingType) Valid() bool {
	return t == ListingTypeNeed || t == ListingTypeOffer
}

// ListingStatus — состояние объявления в публичной ленте.
type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusPending ListingStatus = "pending"
	ListingStatusClosed  ListingStatus = "closed"
)

// Listing — доменная модель объявления.
//
// Особенности:
//   - Latitude/Longitude заданы только вместе (карта или геолокация);
//   - MediaURLs упорядочены и могут быть пустыми;
//   - ViewCount меняется только атомарным инкрементом на стороне БД.
type Listing struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Description     string
	Type            ListingType
	Category        string
	Location        string
	Latitude        *float64
	Longitude       *float64
	District        string
	City            string
	MediaURLs       []string
	ContactEmail    string
	ContactPhone    string
	ContactWhatsapp string
	Status          ListingStatus
	ViewCount       int64
	CreatedAt       time.Time
}

// ListingOwner — публичные поля профиля владельца для карточки объявления.
type ListingOwner struct {
	FullName  string
	AvatarURL string
}

// ListingDetails — объявление вместе с данными владельца.
type ListingDetails struct {
	Listing
	Owner ListingOwner
}

// FilterAll — значение фильтра, эквивалентное его отсутствию.
const FilterAll = "all"

// ListingFilter — параметры публичной ленты.
//
// Особенности:
//   - Page начинается с 1, Limit > 0 (нормализуются сервисом);
//   - пустое значение фильтра или "all" фильтр не применяет.
type ListingFilter struct {
	Page     int32
	Limit    int32
	Search   string
	Category string
	Location string
	Type     string
}

// Offset возвращает смещение (page-1)*limit.
func (f ListingFilter) Offset() int64 {
	if f.Page < 1 {
		return 0
	}

	return int64(f.Page-1) * int64(f.Limit)
}

// ListingPage — страница ленты и общее число подходящих записей.
type ListingPage struct {
	Listings   []Listing
	TotalCount int64
}

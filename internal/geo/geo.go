// geo — обратное геокодирование координат в текстовое место.
package geo

//go:generate mockgen -destination=../../mocks/geo.go -package=mocks github.com/Coullax/disaster-relief-management/internal/geo Resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"googlemaps.github.io/maps"
)

var (
	// ErrNoGeoInfoFound — геокодер не вернул ни одного результата.
	ErrNoGeoInfoFound = errors.New("no geo information found")
	// ErrInvalidCoordinates — широта/долгота вне допустимого диапазона.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Resolver — контракт обратного геокодирования.
type Resolver interface {
	// Reverse возвращает место по координатам.
	Reverse(ctx context.Context, lat, lng float64) (*models.GeoLocation, error)
}

// geocoder — часть *maps.Client, используемая резолвером.
type geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleResolver — Resolver поверх Google Geocoding API.
type GoogleResolver struct {
	client   geocoder
	language string
}

// NewGoogleResolver создаёт клиент Google Maps по API-ключу.
func NewGoogleResolver(apiKey, language string) (*GoogleResolver, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("geo: new maps client: %w", err)
	}

	return &GoogleResolver{client: client, language: language}, nil
}

// Reverse выполняет обратное геокодирование.
// City — locality (или administrative_area_level_1), District — administrative_area_level_2.
func (g *GoogleResolver) Reverse(ctx context.Context, lat, lng float64) (*models.GeoLocation, error) {
	if !ValidCoordinates(lat, lng) {
		return nil, ErrInvalidCoordinates
	}

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: lat, Lng: lng},
		Language: g.language,
	})
	if err != nil {
		return nil, err
	}

	if len(geos) == 0 {
		return nil, ErrNoGeoInfoFound
	}

	var locality, level1, level2 string
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 {
			switch a.Types[0] {
			case "locality":
				locality = a.LongName
			case "administrative_area_level_1":
				level1 = a.LongName
			case "administrative_area_level_2":
				level2 = a.LongName
			}
		}
	}

	loc := &models.GeoLocation{
		City:     locality,
		District: level2,
	}

	if loc.City == "" {
		loc.City = level1
	}

	loc.Location = JoinPlace(loc.District, loc.City)
	if loc.Location == "" {
		loc.Location = geos[0].FormattedAddress
	}

	if loc.Location == "" {
		return nil, ErrNoGeoInfoFound
	}

	return loc, nil
}

// ValidCoordinates проверяет диапазоны широты и долготы.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// FormatCoordinates — запасное текстовое представление места.
func FormatCoordinates(lat, lng float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lng)
}

// Fallback возвращает место из одних координат.
func Fallback(lat, lng float64) *models.GeoLocation {
	return &models.GeoLocation{Location: FormatCoordinates(lat, lng), Fallback: true}
}

// JoinPlace склеивает непустые части через ", ".
func JoinPlace(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, ", ")
}

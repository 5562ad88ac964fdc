package dto

import (
	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/service"
)

// ToInput переводит тело запроса во входную структуру сервиса.
func (r CreateListingRequest) ToInput(sess *models.Session) service.CreateListingInput {
	return service.CreateListingInput{
		Session:         sess,
		FullName:        r.FullName,
		Title:           r.Title,
		Description:     r.Description,
		Type:            r.Type,
		Category:        r.Category,
		Location:        r.Location,
		District:        r.District,
		City:            r.City,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		MediaURLs:       r.MediaURLs,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		ContactWhatsapp: r.ContactWhatsapp,
	}
}

func ListingFromModel(l *models.Listing) Listing {
	media := l.MediaURLs
	if media == nil {
		media = []string{}
	}

	return Listing{
		ID:              l.ID.String(),
		UserID:          l.UserID.String(),
		Title:           l.Title,
		Description:     l.Description,
		Type:            string(l.Type),
		Category:        l.Category,
		Location:        l.Location,
		Latitude:        l.Latitude,
		Longitude:       l.Longitude,
		District:        l.District,
		City:            l.City,
		MediaURLs:       media,
		ContactEmail:    l.ContactEmail,
		ContactPhone:    l.ContactPhone,
		ContactWhatsapp: l.ContactWhatsapp,
		Status:          string(l.Status),
		ViewCount:       l.ViewCount,
		CreatedAt:       l.CreatedAt,
	}
}

func ListingsFromModel(in []models.Listing) []Listing {
	out := make([]Listing, 0, len(in))
	for i := range in {
		out = append(out, ListingFromModel(&in[i]))
	}

	return out
}

func ListingDetailsFromModel(d *models.ListingDetails) ListingDetails {
	return ListingDetails{
		Listing: ListingFromModel(&d.Listing),
		Owner: ListingOwner{
			FullName:  d.Owner.FullName,
			AvatarURL: d.Owner.AvatarURL,
		},
	}
}

// ListingPageFromModel добавляет к странице параметры пагинации.
// total_pages = ceil(total_count / limit).
func ListingPageFromModel(p *models.ListingPage, page, limit int32) ListingPage {
	var pages int64
	if limit > 0 {
		pages = (p.TotalCount + int64(limit) - 1) / int64(limit)
	}

	return ListingPage{
		Listings:   ListingsFromModel(p.Listings),
		TotalCount: p.TotalCount,
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}
}

func AuthFromModel(s *models.AuthSession) AuthResponse {
	return AuthResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		UserID:    s.UserID.String(),
		Email:     s.Email,
	}
}

func ProfileFromModel(p *models.Profile) Profile {
	return Profile{
		ID:          p.ID.String(),
		FullName:    p.FullName,
		Email:       p.Email,
		Phone:       p.Phone,
		AvatarURL:   p.AvatarURL,
		Bio:         p.Bio,
		Location:    p.Location,
		SocialLinks: p.SocialLinks,
		Role:        p.Role,
		CreatedAt:   p.CreatedAt,
	}
}

func MediaUploadFromModel(r *models.MediaUploadResult) MediaUploadResponse {
	return MediaUploadResponse{URLs: r.URLs, Failed: r.Failed}
}

func PresignFromModel(u *models.PresignedUpload) PresignResponse {
	headers := u.RequiredHeader
	if headers == nil {
		headers = map[string]string{}
	}

	return PresignResponse{
		UploadURL:       u.UploadURL,
		Key:             u.Key,
		PublicURL:       u.PublicURL,
		ExpiresIn:       int64(u.Expires.Seconds()),
		RequiredHeaders: headers,
	}
}

func GeoFromModel(g *models.GeoLocation) GeoLocation {
	return GeoLocation{
		Location: g.Location,
		City:     g.City,
		District: g.District,
		Fallback: g.Fallback,
	}
}

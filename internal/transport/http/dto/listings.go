// dto — JSON-представления запросов и ответов REST API relief-board.
package dto

import "time"

// CreateListingRequest — тело POST /listings.
type CreateListingRequest struct {
	FullName        string   `json:"full_name"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	Location        string   `json:"location"`
	District        string   `json:"district"`
	City            string   `json:"city"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	MediaURLs       []string `json:"media_urls"`
	ContactEmail    string   `json:"contact_email"`
	ContactPhone    string   `json:"contact_phone"`
	ContactWhatsapp string   `json:"contact_whatsapp"`
}

type Listing struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Location        string    `json:"location"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	District        string    `json:"district,omitempty"`
	City            string    `json:"city,omitempty"`
	MediaURLs       []string  `json:"media_urls"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	ContactWhatsapp string    `json:"contact_whatsapp,omitempty"`
	Status          string    `json:"status"`
	ViewCount       int64     `json:"view_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type ListingOwner struct {
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ListingDetails — ответ GET /listings/{id}.
type ListingDetails struct {
	Listing
	Owner ListingOwner `json:"owner"`
}

// ListingPage — ответ GET /listings.
type ListingPage struct {
	Listings   []Listing `json:"listings"`
	TotalCount int64     `json:"total_count"`
	Page       int32     `json:"page"`
	Limit      int32     `json:"limit"`
	TotalPages int64     `json:"total_pages"`
}

type ListingList struct {
	Listings []Listing `json:"listings"`
}

type Categories struct {
	Categories []string `json:"categories"`
}

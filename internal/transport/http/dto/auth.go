package dto

import "time"

type OTPRequest struct {
	Email string `json:"email"`
}

type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
}

type Profile struct {
	ID          string            `json:"id"`
	FullName    string            `json:"full_name"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	AvatarURL   string            `json:"avatar_url,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	Location    string            `json:"location,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
	Role        string            `json:"role"`
	CreatedAt   time.Time         `json:"created_at"`
}

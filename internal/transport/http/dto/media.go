package dto

type MediaUploadResponse struct {
	URLs   []string `json:"urls"`
	Failed []string `json:"failed"`
}

type PresignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type PresignResponse struct {
	UploadURL       string            `json:"upload_url"`
	Key             string            `json:"key"`
	PublicURL       string            `json:"public_url"`
	ExpiresIn       int64             `json:"expires_in"` // секунды
	RequiredHeaders map[string]string `json:"required_headers"`
}

type GeoLocation struct {
	Location string `json:"location"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Fallback bool   `json:"fallback"`
}

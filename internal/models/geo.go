package models

// GeoLocation — результат обратного геокодирования.
// Fallback=true означает, что Location — отформатированные координаты.
type GeoLocation struct {
	Location string
	City     string
	District string
	Fallback bool
}

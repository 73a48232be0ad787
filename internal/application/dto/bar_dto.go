package dto

import "time"

// BarResponse barra para respuestas HTTP.
type BarResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	SoftRestaurantCode string     `json:"soft_restaurant_code,omitempty"`
	LastImportAt       *time.Time `json:"last_import_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

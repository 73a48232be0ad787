package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mibarra/mibarra-api/internal/domain/entity"
)

// CreateBottleRequest alta de una botella en el catálogo.
type CreateBottleRequest struct {
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Category       string          `json:"category"`
	Capacity       decimal.Decimal `json:"capacity_ml"`
	Remaining      decimal.Decimal `json:"remaining_ml"`
	CapacityUnits  *int64          `json:"capacity_units,omitempty"`
	RemainingUnits *int64          `json:"remaining_units,omitempty"`
	ImageURL       string          `json:"image_url"`
	Type           string          `json:"type"`
}

// UpdateStockRequest ajuste manual del stock de una botella.
type UpdateStockRequest struct {
	Remaining      decimal.Decimal `json:"remaining_ml"`
	RemainingUnits *int64          `json:"remaining_units,omitempty"`
}

// BottleResponse botella para respuestas HTTP.
type BottleResponse struct {
	ID             string          `json:"id"`
	BarID          string          `json:"bar_id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand,omitempty"`
	Category       string          `json:"category"`
	Capacity       decimal.Decimal `json:"capacity_ml"`
	Remaining      decimal.Decimal `json:"remaining_ml"`
	CapacityUnits  *int64          `json:"capacity_units,omitempty"`
	RemainingUnits *int64          `json:"remaining_units,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	Type           string          `json:"type,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToBottleResponse convierte la entidad al DTO de respuesta.
func ToBottleResponse(b *entity.Bottle) BottleResponse {
	return BottleResponse{
		ID:             b.ID,
		BarID:          b.BarID,
		Name:           b.Name,
		Brand:          b.Brand,
		Category:       b.Category,
		Capacity:       b.Capacity,
		Remaining:      b.Remaining,
		CapacityUnits:  b.CapacityUnits,
		RemainingUnits: b.RemainingUnits,
		ImageURL:       b.ImageURL,
		Type:           b.Type,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

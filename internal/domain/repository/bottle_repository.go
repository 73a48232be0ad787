package repository

import (
	"context"

	"github.com/mibarra/mibarra-api/internal/domain/entity"
)

// BottleRepository puerto de persistencia del catálogo de botellas.
type BottleRepository interface {
	Create(ctx context.Context, bottle *entity.Bottle) error
	GetByID(ctx context.Context, id string) (*entity.Bottle, error)
	// ListByBar devuelve el catálogo en su orden natural (created_at, id);
	// el motor de reconciliación depende de que este orden sea estable.
	ListByBar(ctx context.Context, barID string) ([]entity.Bottle, error)
	Update(ctx context.Context, bottle *entity.Bottle) error
	// UpdateStock actualiza solo los campos de stock (usado por la importación de ventas).
	UpdateStock(ctx context.Context, bottle *entity.Bottle) error
	Delete(ctx context.Context, id string) error
}

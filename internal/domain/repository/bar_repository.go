package repository

import (
	"context"
	"time"

	"github.com/mibarra/mibarra-api/internal/domain/entity"
)

// BarRepository puerto de persistencia de barras.
type BarRepository interface {
	Create(ctx context.Context, bar *entity.Bar) error
	GetByID(ctx context.Context, id string) (*entity.Bar, error)
	GetByUser(ctx context.Context, userID string) (*entity.Bar, error)
	// UpdateLastImport estampa la fecha de la última importación de ventas.
	UpdateLastImport(ctx context.Context, barID string, at time.Time) error
}

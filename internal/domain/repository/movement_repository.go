package repository

import (
	"context"

	"github.com/mibarra/mibarra-api/internal/domain/entity"
)

// MovementRepository puerto de la bitácora de movimientos.
type MovementRepository interface {
	Create(ctx context.Context, mov *entity.Movement) error
	ListByBar(ctx context.Context, barID string, limit, offset int) ([]entity.Movement, error)
}

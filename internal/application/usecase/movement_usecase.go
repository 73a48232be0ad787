package usecase

import (
	"context"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

// MovementUseCase consulta de la bitácora de movimientos.
type MovementUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo}
}

// List devuelve los movimientos de la barra, más recientes primero.
func (uc *MovementUseCase) List(ctx context.Context, barID string, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	movs, err := uc.movRepo.ListByBar(ctx, barID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, len(movs))
	for i, m := range movs {
		out[i] = dto.MovementResponse{
			ID:          m.ID,
			Type:        m.Type,
			BottleID:    m.BottleID,
			BottleName:  m.BottleName,
			NewValue:    m.NewValue,
			UserName:    m.UserName,
			Description: m.Description,
			CreatedAt:   m.CreatedAt,
		}
	}
	return out, nil
}

package usecase

import (
	"context"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	"github.com/mibarra/mibarra-api/internal/domain"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

// BarUseCase consulta de la barra del usuario.
type BarUseCase struct {
	barRepo repository.BarRepository
}

// NewBarUseCase construye el caso de uso.
func NewBarUseCase(barRepo repository.BarRepository) *BarUseCase {
	return &BarUseCase{barRepo: barRepo}
}

// Get devuelve la barra por ID.
func (uc *BarUseCase) Get(ctx context.Context, barID string) (*dto.BarResponse, error) {
	bar, err := uc.barRepo.GetByID(ctx, barID)
	if err != nil {
		return nil, err
	}
	if bar == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.BarResponse{
		ID:                 bar.ID,
		Name:               bar.Name,
		SoftRestaurantCode: bar.SoftRestaurantCode,
		LastImportAt:       bar.LastImportAt,
		CreatedAt:          bar.CreatedAt,
	}, nil
}

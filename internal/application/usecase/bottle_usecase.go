package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	"github.com/mibarra/mibarra-api/internal/domain"
	"github.com/mibarra/mibarra-api/internal/domain/entity"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

// BottleUseCase CRUD del catálogo de botellas de una barra.
// El motor de reconciliación solo lee este catálogo; las altas y ajustes
// manuales viven aquí.
type BottleUseCase struct {
	bottleRepo repository.BottleRepository
	movRepo    repository.MovementRepository
}

// NewBottleUseCase construye el caso de uso.
func NewBottleUseCase(bottleRepo repository.BottleRepository, movRepo repository.MovementRepository) *BottleUseCase {
	return &BottleUseCase{bottleRepo: bottleRepo, movRepo: movRepo}
}

// Create da de alta una botella. El restante inicia en la capacidad si no se indica.
func (uc *BottleUseCase) Create(ctx context.Context, barID string, in dto.CreateBottleRequest) (*dto.BottleResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Capacity.IsNegative() || in.Remaining.IsNegative() || in.Remaining.GreaterThan(in.Capacity) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	remaining := in.Remaining
	if remaining.IsZero() && in.RemainingUnits == nil {
		remaining = in.Capacity
	}
	b := &entity.Bottle{
		ID:             uuid.New().String(),
		BarID:          barID,
		Name:           in.Name,
		Brand:          in.Brand,
		Category:       in.Category,
		Capacity:       in.Capacity,
		Remaining:      remaining,
		CapacityUnits:  in.CapacityUnits,
		RemainingUnits: in.RemainingUnits,
		ImageURL:       in.ImageURL,
		Type:           in.Type,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.bottleRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	resp := dto.ToBottleResponse(b)
	return &resp, nil
}

// List devuelve el catálogo de la barra en su orden natural.
func (uc *BottleUseCase) List(ctx context.Context, barID string) ([]dto.BottleResponse, error) {
	bottles, err := uc.bottleRepo.ListByBar(ctx, barID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BottleResponse, len(bottles))
	for i := range bottles {
		out[i] = dto.ToBottleResponse(&bottles[i])
	}
	return out, nil
}

// GetByID devuelve una botella validando que pertenezca a la barra.
func (uc *BottleUseCase) GetByID(ctx context.Context, barID, id string) (*dto.BottleResponse, error) {
	b, err := uc.bottleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.BarID != barID {
		return nil, domain.ErrForbidden
	}
	resp := dto.ToBottleResponse(b)
	return &resp, nil
}

// UpdateStock ajusta manualmente el stock de una botella y registra el
// movimiento en la bitácora.
func (uc *BottleUseCase) UpdateStock(ctx context.Context, barID, id, userName string, in dto.UpdateStockRequest) (*dto.BottleResponse, error) {
	b, err := uc.bottleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.BarID != barID {
		return nil, domain.ErrForbidden
	}
	if in.Remaining.IsNegative() || in.Remaining.GreaterThan(b.Capacity) {
		return nil, domain.ErrInvalidInput
	}
	b.Remaining = in.Remaining
	if in.RemainingUnits != nil {
		if *in.RemainingUnits < 0 {
			return nil, domain.ErrInvalidInput
		}
		b.RemainingUnits = in.RemainingUnits
	}
	b.UpdatedAt = time.Now()
	if err := uc.bottleRepo.UpdateStock(ctx, b); err != nil {
		return nil, err
	}

	newValue, _ := b.Remaining.Float64()
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		BarID:       barID,
		Type:        entity.MovementTypeManualAdjust,
		BottleID:    b.ID,
		BottleName:  b.Name,
		NewValue:    newValue,
		UserName:    userName,
		Description: "Ajuste manual de stock",
		CreatedAt:   b.UpdatedAt,
	}
	if err := uc.movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	resp := dto.ToBottleResponse(b)
	return &resp, nil
}

// Delete elimina una botella del catálogo.
func (uc *BottleUseCase) Delete(ctx context.Context, barID, id string) error {
	b, err := uc.bottleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if b.BarID != barID {
		return domain.ErrForbidden
	}
	return uc.bottleRepo.Delete(ctx, id)
}

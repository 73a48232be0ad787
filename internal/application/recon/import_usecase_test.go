package recon_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appRecon "github.com/mibarra/mibarra-api/internal/application/recon"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	"github.com/mibarra/mibarra-api/internal/domain"
	"github.com/mibarra/mibarra-api/internal/domain/entity"
	domainrecon "github.com/mibarra/mibarra-api/internal/domain/recon"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBottleRepo struct {
	bottles []entity.Bottle
	updated []entity.Bottle
}

func (f *fakeBottleRepo) Create(context.Context, *entity.Bottle) error { return nil }
func (f *fakeBottleRepo) GetByID(context.Context, string) (*entity.Bottle, error) {
	return nil, nil
}
func (f *fakeBottleRepo) ListByBar(context.Context, string) ([]entity.Bottle, error) {
	return f.bottles, nil
}
func (f *fakeBottleRepo) Update(context.Context, *entity.Bottle) error { return nil }
func (f *fakeBottleRepo) UpdateStock(_ context.Context, b *entity.Bottle) error {
	f.updated = append(f.updated, *b)
	return nil
}
func (f *fakeBottleRepo) Delete(context.Context, string) error { return nil }

type fakeMovementRepo struct {
	created []entity.Movement
}

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	f.created = append(f.created, *m)
	return nil
}
func (f *fakeMovementRepo) ListByBar(context.Context, string, int, int) ([]entity.Movement, error) {
	return nil, nil
}

type fakeBarRepo struct {
	lastImportAt *time.Time
}

func (f *fakeBarRepo) Create(context.Context, *entity.Bar) error            { return nil }
func (f *fakeBarRepo) GetByID(context.Context, string) (*entity.Bar, error) { return nil, nil }
func (f *fakeBarRepo) GetByUser(context.Context, string) (*entity.Bar, error) {
	return nil, nil
}
func (f *fakeBarRepo) UpdateLastImport(_ context.Context, _ string, at time.Time) error {
	f.lastImportAt = &at
	return nil
}

type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente con los fakes (sin transacción real).
type fakeTxRunner struct {
	bottleRepo *fakeBottleRepo
	movRepo    *fakeMovementRepo
	barRepo    *fakeBarRepo
	runs       int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	bottleRepo repository.BottleRepository,
	movRepo repository.MovementRepository,
	barRepo repository.BarRepository,
) error) error {
	f.runs++
	return fn(f.bottleRepo, f.movRepo, f.barRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func i64(v int64) *int64 { return &v }

func beerBottle(name string, capUnits, remUnits int64) entity.Bottle {
	return entity.Bottle{
		ID:             "btl-" + name,
		BarID:          "bar-1",
		Name:           name,
		Category:       "cerveza",
		Capacity:       decimal.NewFromInt(35500),
		Remaining:      decimal.NewFromInt(35500).Mul(decimal.NewFromInt(remUnits)).Div(decimal.NewFromInt(capUnits)),
		CapacityUnits:  i64(capUnits),
		RemainingUnits: i64(remUnits),
	}
}

func newImportUseCase(bottles []entity.Bottle) (*appRecon.ImportSalesUseCase, *fakeBottleRepo, *fakeMovementRepo, *fakeBarRepo) {
	bottleRepo := &fakeBottleRepo{bottles: bottles}
	movRepo := &fakeMovementRepo{}
	barRepo := &fakeBarRepo{}
	userRepo := &fakeUserRepo{user: &entity.User{ID: "user-1", Name: "Carlos"}}
	tx := &fakeTxRunner{bottleRepo: bottleRepo, movRepo: movRepo, barRepo: barRepo}
	uc := appRecon.NewImportSalesUseCase(tx, bottleRepo, userRepo, domainrecon.DefaultConfig())
	return uc, bottleRepo, movRepo, barRepo
}

func salesRows(pairs ...any) []map[string]any {
	rows := make([]map[string]any, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		rows = append(rows, map[string]any{
			"Producto": pairs[i],
			"Cantidad": pairs[i+1],
		})
	}
	return rows
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestImportSales_AplicaYPersisteEnTransaccion(t *testing.T) {
	uc, bottleRepo, movRepo, barRepo := newImportUseCase([]entity.Bottle{
		beerBottle("Cerveza Corona", 100, 40),
	})

	out, err := uc.ImportSales(context.Background(), "bar-1", "user-1", dto.ImportSalesRequest{
		Rows: salesRows("Corona", "10"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Applied)
	assert.Equal(t, 0, out.Unmatched)
	assert.Contains(t, out.Message, "1 ventas aplicadas al inventario")

	// Stock persistido con el descuento aplicado
	require.Len(t, bottleRepo.updated, 1)
	require.NotNil(t, bottleRepo.updated[0].RemainingUnits)
	assert.Equal(t, int64(30), *bottleRepo.updated[0].RemainingUnits)

	// Bitácora: una sola entrada agregada para todo el lote
	require.Len(t, movRepo.created, 1)
	mov := movRepo.created[0]
	assert.Equal(t, entity.MovementTypeSalesImport, mov.Type)
	assert.Equal(t, "Carlos", mov.UserName)
	assert.Equal(t, float64(1), mov.NewValue)
	assert.Contains(t, mov.Description, "1 ventas aplicadas")

	// La fecha de última importación queda estampada
	assert.NotNil(t, barRepo.lastImportAt)
}

func TestImportSales_SinFilasReconocibles_NoTocaNada(t *testing.T) {
	uc, bottleRepo, movRepo, _ := newImportUseCase([]entity.Bottle{
		beerBottle("Cerveza Corona", 100, 40),
	})

	out, err := uc.ImportSales(context.Background(), "bar-1", "user-1", dto.ImportSalesRequest{
		Rows: []map[string]any{{"Total": "150", "Folio": "A-1"}},
	})
	require.NoError(t, err)

	assert.Zero(t, out.Applied)
	assert.Contains(t, out.Message, "No se encontraron filas de ventas")
	assert.Empty(t, bottleRepo.updated, "sin filas no debe haber escrituras")
	assert.Empty(t, movRepo.created)
}

func TestImportSales_CatalogoVacio_RetornaError(t *testing.T) {
	uc, _, _, _ := newImportUseCase(nil)

	_, err := uc.ImportSales(context.Background(), "bar-1", "user-1", dto.ImportSalesRequest{
		Rows: salesRows("Corona", "2"),
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
}

func TestImportSales_SinMatchVaAlResumen(t *testing.T) {
	uc, _, _, _ := newImportUseCase([]entity.Bottle{
		beerBottle("Cerveza Corona", 100, 40),
	})

	out, err := uc.ImportSales(context.Background(), "bar-1", "user-1", dto.ImportSalesRequest{
		Rows: salesRows("Refresco Cola", "3", "Corona", "1"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Applied)
	assert.Equal(t, 1, out.Unmatched)
	require.NotEmpty(t, out.Details)
	assert.Contains(t, out.Details[len(out.Details)-1], "Sin match: Refresco Cola")
}

func TestImportSales_VistaPreviaTruncada(t *testing.T) {
	// 20 botellas distintas, cada una vendida una vez: el detalle se corta en 15
	bottles := make([]entity.Bottle, 20)
	var pairs []any
	for i := range bottles {
		name := fmt.Sprintf("Cerveza Marca%02d", i)
		bottles[i] = beerBottle(name, 100, 50)
		pairs = append(pairs, name, "1")
	}
	uc, _, _, _ := newImportUseCase(bottles)

	out, err := uc.ImportSales(context.Background(), "bar-1", "user-1", dto.ImportSalesRequest{
		Rows: salesRows(pairs...),
	})
	require.NoError(t, err)

	assert.Equal(t, 20, out.Applied)
	assert.Len(t, out.Details, 15, "la vista previa de aplicadas se trunca en 15")
}

func TestImportSales_OverridesDePorcion(t *testing.T) {
	vodka := entity.Bottle{
		ID:        "btl-absolut",
		BarID:     "bar-1",
		Name:      "Vodka Absolut",
		Category:  "vodka",
		Capacity:  decimal.NewFromInt(750),
		Remaining: decimal.NewFromInt(750),
	}
	uc, bottleRepo, _, _ := newImportUseCase([]entity.Bottle{vodka})

	// Porción de vodka forzada a 2 oz (default 1): 3 ventas = 6 oz
	out, err := uc.ImportSales(context.Background(), "bar-1", "user-1", dto.ImportSalesRequest{
		Rows:             salesRows("Absolut", "3"),
		PortionOverrides: map[string]float64{"vodka": 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Applied)
	require.Len(t, bottleRepo.updated, 1)

	expected := 750 - 6.0/0.033814 // 6 oz en ml
	got, _ := bottleRepo.updated[0].Remaining.Float64()
	assert.InDelta(t, expected, got, 0.01)
	assert.Contains(t, out.Details[0], "-6.0 oz")
}

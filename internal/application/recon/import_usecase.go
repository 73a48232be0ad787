// Package recon contiene los casos de uso que orquestan el motor de
// reconciliación contra la persistencia: importación de ventas y reporte.
package recon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	"github.com/mibarra/mibarra-api/internal/domain"
	"github.com/mibarra/mibarra-api/internal/domain/entity"
	domainrecon "github.com/mibarra/mibarra-api/internal/domain/recon"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

// Vistas previas truncadas del resumen de importación.
const (
	previewAppliedMax   = 15
	previewUnmatchedMax = 5
)

// ImportSalesUseCase aplica un export de ventas contra el catálogo de la
// barra: normaliza filas, corre el motor y persiste el resultado junto con la
// entrada de bitácora en una sola transacción.
type ImportSalesUseCase struct {
	txRunner   TxRunner
	bottleRepo repository.BottleRepository
	userRepo   repository.UserRepository
	cfg        domainrecon.Config
}

// NewImportSalesUseCase construye el caso de uso.
func NewImportSalesUseCase(
	txRunner TxRunner,
	bottleRepo repository.BottleRepository,
	userRepo repository.UserRepository,
	cfg domainrecon.Config,
) *ImportSalesUseCase {
	return &ImportSalesUseCase{
		txRunner:   txRunner,
		bottleRepo: bottleRepo,
		userRepo:   userRepo,
		cfg:        cfg,
	}
}

// ImportSales procesa las filas crudas de un export de ventas para una barra.
//
// Filas individuales malformadas se descartan sin error; un archivo sin
// columnas reconocibles devuelve un resumen con cero filas (el caller decide
// cómo comunicarlo). El único error duro de datos es el catálogo vacío.
func (uc *ImportSalesUseCase) ImportSales(
	ctx context.Context,
	barID, userID string,
	in dto.ImportSalesRequest,
) (*dto.ImportSummary, error) {
	rawRows := make([]domainrecon.RawRow, len(in.Rows))
	for i, r := range in.Rows {
		rawRows[i] = domainrecon.RawRow(r)
	}
	sales := domainrecon.NormalizeRows(rawRows)
	if len(sales) == 0 {
		return &dto.ImportSummary{
			Message: "Archivo leído. No se encontraron filas de ventas (revisa que haya columnas tipo 'producto/nombre' y 'cantidad').",
		}, nil
	}

	catalog, err := uc.bottleRepo.ListByBar(ctx, barID)
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	if len(catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	cfg := uc.cfg
	if len(in.PortionOverrides) > 0 {
		overrides := make(map[string]decimal.Decimal, len(in.PortionOverrides))
		for cat, p := range in.PortionOverrides {
			overrides[cat] = decimal.NewFromFloat(p)
		}
		cfg.Rules = cfg.Rules.WithOverrides(overrides)
	}

	result, err := domainrecon.Reconcile(catalog, sales, cfg)
	if err != nil {
		return nil, err
	}

	userName := "Usuario"
	if user, err := uc.userRepo.GetByID(ctx, userID); err == nil && user != nil && user.Name != "" {
		userName = user.Name
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		bottleRepo repository.BottleRepository,
		movRepo repository.MovementRepository,
		barRepo repository.BarRepository,
	) error {
		for i := range result.Catalog {
			if err := bottleRepo.UpdateStock(ctx, &result.Catalog[i]); err != nil {
				return err
			}
		}
		mov := &entity.Movement{
			ID:          uuid.New().String(),
			BarID:       barID,
			Type:        entity.MovementTypeSalesImport,
			BottleID:    "_",
			BottleName:  "Importar ventas",
			NewValue:    float64(len(result.Applied)),
			UserName:    userName,
			Description: fmt.Sprintf("%d ventas aplicadas al inventario", len(result.Applied)),
			CreatedAt:   now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return barRepo.UpdateLastImport(ctx, barID, now)
	})
	if err != nil {
		return nil, err
	}

	return buildSummary(result), nil
}

// buildSummary arma los conteos y las vistas previas truncadas que ve el
// usuario tras importar.
func buildSummary(result *domainrecon.Result) *dto.ImportSummary {
	details := make([]string, 0, previewAppliedMax+1)
	for i, d := range result.Applied {
		if i == previewAppliedMax {
			break
		}
		details = append(details, fmt.Sprintf("%s: -%s %s", d.BottleName, d.Amount.StringFixed(1), d.Unit))
	}
	if len(result.Unmatched) > 0 {
		preview := result.Unmatched
		suffix := ""
		if len(preview) > previewUnmatchedMax {
			preview = preview[:previewUnmatchedMax]
			suffix = "…"
		}
		details = append(details, fmt.Sprintf("Sin match: %s%s", strings.Join(preview, ", "), suffix))
	}

	return &dto.ImportSummary{
		Applied:   len(result.Applied),
		Unmatched: len(result.Unmatched),
		Details:   details,
		Message:   fmt.Sprintf("Archivo leído. %d ventas aplicadas al inventario. Base de datos actualizada.", len(result.Applied)),
	}
}

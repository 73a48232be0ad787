package recon

import (
	"context"
	"fmt"
	"time"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	"github.com/mibarra/mibarra-api/internal/domain"
	domainrecon "github.com/mibarra/mibarra-api/internal/domain/recon"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

// ReportUseCase construye el reporte de pedido desde el estado actual del
// catálogo. Es un punto de entrada independiente de la importación.
type ReportUseCase struct {
	bottleRepo repository.BottleRepository
	barRepo    repository.BarRepository
	pdfGen     ReportPDFGenerator
	cfg        domainrecon.Config
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	bottleRepo repository.BottleRepository,
	barRepo repository.BarRepository,
	pdfGen ReportPDFGenerator,
	cfg domainrecon.Config,
) *ReportUseCase {
	return &ReportUseCase{
		bottleRepo: bottleRepo,
		barRepo:    barRepo,
		pdfGen:     pdfGen,
		cfg:        cfg,
	}
}

// BuildReport genera el reporte de pedido de la barra (texto + líneas).
// generatedAt lo provee el caller para que la salida sea determinista.
func (uc *ReportUseCase) BuildReport(ctx context.Context, barID string, generatedAt time.Time) (*dto.ReportResponse, error) {
	rep, _, err := uc.domainReport(ctx, barID, generatedAt)
	if err != nil {
		return nil, err
	}

	lines := make([]dto.ReportLineDTO, len(rep.Lines))
	for i, l := range rep.Lines {
		lines[i] = dto.ReportLineDTO{Name: l.Name, Quantity: l.Quantity, Reason: string(l.Reason)}
	}
	return &dto.ReportResponse{
		Text:        rep.Text,
		Lines:       lines,
		GeneratedAt: generatedAt,
	}, nil
}

// BuildReportPDF genera la representación PDF del reporte.
func (uc *ReportUseCase) BuildReportPDF(ctx context.Context, barID string, generatedAt time.Time) ([]byte, error) {
	rep, barName, err := uc.domainReport(ctx, barID, generatedAt)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.pdfGen.GenerateReportPDF(ctx, barName, generatedAt, rep)
	if err != nil {
		return nil, fmt.Errorf("generar PDF del pedido: %w", err)
	}
	return pdf, nil
}

func (uc *ReportUseCase) domainReport(ctx context.Context, barID string, generatedAt time.Time) (domainrecon.Report, string, error) {
	bar, err := uc.barRepo.GetByID(ctx, barID)
	if err != nil {
		return domainrecon.Report{}, "", err
	}
	if bar == nil {
		return domainrecon.Report{}, "", domain.ErrNotFound
	}
	catalog, err := uc.bottleRepo.ListByBar(ctx, barID)
	if err != nil {
		return domainrecon.Report{}, "", fmt.Errorf("listar catálogo: %w", err)
	}
	return domainrecon.BuildReport(catalog, bar.Name, generatedAt, uc.cfg), bar.Name, nil
}

package recon

import (
	"context"
	"time"

	domainrecon "github.com/mibarra/mibarra-api/internal/domain/recon"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización del catálogo,
// la bitácora y el sello de última importación se apliquen atómicamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bottleRepo repository.BottleRepository,
		movRepo repository.MovementRepository,
		barRepo repository.BarRepository,
	) error) error
}

// ReportPDFGenerator genera la representación PDF del reporte de pedido.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, barName string, generatedAt time.Time, rep domainrecon.Report) ([]byte, error)
}

// Package pdf implementa la representación PDF del reporte de pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: PEDIDO - <barra>  │  Generado       │
//	│  ─────────────────────────────────────────  │
//	│  POR PEDIR (unidades): nombre | cantidad     │
//	│  POR DEBAJO DEL umbral: nombre | % restante  │
//	│  ─────────────────────────────────────────  │
//	│  FOOTER: --- MiBarra ---                     │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appRecon "github.com/mibarra/mibarra-api/internal/application/recon"
	domainrecon "github.com/mibarra/mibarra-api/internal/domain/recon"
)

var _ appRecon.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorAccent  = &props.Color{Red: 217, Green: 119, Blue: 6}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa recon.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	lowStockThreshold float64
}

// NewMarotoReportGenerator construye el generador. El umbral se usa solo para
// el título de la sección de escasez.
func NewMarotoReportGenerator(lowStockThreshold float64) *MarotoReportGenerator {
	return &MarotoReportGenerator{lowStockThreshold: lowStockThreshold}
}

// GenerateReportPDF genera el PDF del pedido y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	barName string,
	generatedAt time.Time,
	rep domainrecon.Report,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Pedido - "+barName, true).
		WithAuthor("MiBarra", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(barName, generatedAt))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	porPedir, bajoUmbral := splitByReason(rep.Lines)

	if len(porPedir) > 0 {
		m.AddRows(sectionTitleRow("POR PEDIR (unidades)", colorAccent))
		for _, l := range porPedir {
			m.AddRows(lineRow(l))
		}
		m.AddRows(row.New(4))
	}

	if len(bajoUmbral) > 0 {
		m.AddRows(sectionTitleRow(
			fmt.Sprintf("POR DEBAJO DEL %d%%", int(g.lowStockThreshold)), colorPrimary,
		))
		for _, l := range bajoUmbral {
			m.AddRows(lineRow(l))
		}
		m.AddRows(row.New(4))
	}

	if len(rep.Lines) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New(
				fmt.Sprintf("No hay botellas por pedir ni por debajo del %d%%. Barra bien surtida.", int(g.lowStockThreshold)),
				props.Text{Size: 10, Top: 3, Color: colorGray},
			),
		)))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("--- MiBarra ---", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del pedido (izq) y fecha de generación (der).
func headerRow(barName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("PEDIDO - "+barName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string, color *props.Color) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: color, Top: 2,
		}),
	))
}

// lineRow: una botella con su cantidad, estilo bullet.
func lineRow(l domainrecon.ReportLine) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New("• "+l.Name, props.Text{
			Size: 10, Top: 1, Left: 2,
		})),
		col.New(4).Add(text.New(l.Quantity, props.Text{
			Size: 10, Align: align.Right, Top: 1, Right: 2,
		})),
	)
}

// splitByReason separa las líneas manteniendo el orden estable del reporte.
func splitByReason(lines []domainrecon.ReportLine) (porPedir, bajoUmbral []domainrecon.ReportLine) {
	for _, l := range lines {
		if l.Reason == domainrecon.ReasonRestock {
			porPedir = append(porPedir, l)
		} else {
			bajoUmbral = append(bajoUmbral, l)
		}
	}
	return porPedir, bajoUmbral
}

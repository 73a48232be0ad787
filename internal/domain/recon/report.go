package recon

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mibarra/mibarra-api/internal/domain/entity"
)

// Motivos de línea del reporte de pedido.
type Reason string

const (
	ReasonRestock  Reason = "por_pedir" // discretas por debajo de su capacidad
	ReasonLowStock Reason = "bajo_25"   // cualquier botella bajo el umbral de escasez
)

// ReportLine es una línea estructurada del reporte.
type ReportLine struct {
	Name     string
	Quantity string // "12 unid", "20% (5.1 oz rest.)"
	Reason   Reason
}

// Report es el reporte de pedido: texto listo para compartir + líneas.
// Se construye fresco en cada llamada desde el catálogo actual; el motor
// nunca lo persiste.
type Report struct {
	Text  string
	Lines []ReportLine
}

// BuildReport deriva el reporte de pedido del estado actual del catálogo.
// Función pura del catálogo y generatedAt: con timestamp congelado la salida
// es idéntica en llamadas repetidas. Es un punto de entrada independiente de
// la importación.
//
// Reglas, en este orden de prioridad:
//   - POR PEDIR: solo discretas, con capacityUnits - remainingUnits > 0.
//   - POR DEBAJO DEL umbral (default 25%): cualquier botella con porcentaje
//     restante bajo el umbral (las discretas usan el par de unidades, las
//     continuas el volumen, nunca una fórmula mixta).
//
// Una botella presente en ambas listas se emite solo en POR PEDIR
// (deduplicación por nombre). El orden es estable: orden del catálogo,
// POR PEDIR antes que bajo-umbral.
func BuildReport(catalog []entity.Bottle, barName string, generatedAt time.Time, cfg Config) Report {
	var porPedir, bajoUmbral []ReportLine

	for i := range catalog {
		b := &catalog[i]
		discrete := cfg.Rules.IsDiscrete(b.Category)

		var pct float64
		if discrete {
			capUnits, remUnits := unitState(b)
			if toOrder := capUnits - remUnits; toOrder > 0 {
				porPedir = append(porPedir, ReportLine{
					Name:     b.Name,
					Quantity: fmt.Sprintf("%d %s", toOrder, UnitShortUnits),
					Reason:   ReasonRestock,
				})
			}
			if capUnits > 0 {
				pct = float64(remUnits) / float64(capUnits) * 100
			}
			if pct < cfg.LowStockThreshold {
				bajoUmbral = append(bajoUmbral, ReportLine{
					Name:     b.Name,
					Quantity: fmt.Sprintf("%d%% (%d %s rest.)", int(math.Round(pct)), remUnits, UnitShortUnits),
					Reason:   ReasonLowStock,
				})
			}
			continue
		}

		if b.Capacity.IsPositive() {
			pct, _ = b.Remaining.Div(b.Capacity).Mul(hundred).Float64()
		}
		if pct < cfg.LowStockThreshold {
			remOz, _ := b.Remaining.Mul(mlToOz).Float64()
			bajoUmbral = append(bajoUmbral, ReportLine{
				Name:     b.Name,
				Quantity: fmt.Sprintf("%d%% (%.1f %s rest.)", int(math.Round(pct)), remOz, UnitShortOz),
				Reason:   ReasonLowStock,
			})
		}
	}

	// Si una botella está por pedir y también bajo el umbral, una sola línea.
	inPorPedir := make(map[string]struct{}, len(porPedir))
	for _, l := range porPedir {
		inPorPedir[l.Name] = struct{}{}
	}
	deduped := bajoUmbral[:0]
	for _, l := range bajoUmbral {
		if _, dup := inPorPedir[l.Name]; !dup {
			deduped = append(deduped, l)
		}
	}

	lines := make([]ReportLine, 0, len(porPedir)+len(deduped))
	lines = append(lines, porPedir...)
	lines = append(lines, deduped...)

	return Report{
		Text:  renderText(barName, generatedAt, porPedir, deduped, cfg),
		Lines: lines,
	}
}

var hundred = decimal.NewFromInt(100)

// renderText arma el texto plano con la plantilla fija del pedido.
func renderText(barName string, generatedAt time.Time, porPedir, bajoUmbral []ReportLine, cfg Config) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "PEDIDO - %s\n", barName)
	fmt.Fprintf(&sb, "Generado: %s\n", generatedAt.Format("02/01/2006 15:04"))
	sb.WriteString(strings.Repeat("=", 32))
	sb.WriteString("\n\n")

	if len(porPedir) > 0 {
		sb.WriteString("POR PEDIR (unidades):\n")
		for _, l := range porPedir {
			fmt.Fprintf(&sb, "• %s: %s\n", l.Name, l.Quantity)
		}
		sb.WriteString("\n")
	}

	if len(bajoUmbral) > 0 {
		fmt.Fprintf(&sb, "POR DEBAJO DEL %d%%:\n", int(cfg.LowStockThreshold))
		for _, l := range bajoUmbral {
			fmt.Fprintf(&sb, "• %s: %s\n", l.Name, l.Quantity)
		}
		sb.WriteString("\n")
	}

	if len(porPedir) == 0 && len(bajoUmbral) == 0 {
		fmt.Fprintf(&sb, "No hay botellas por pedir ni por debajo del %d%%. Barra bien surtida.\n", int(cfg.LowStockThreshold))
	}

	sb.WriteString("\n--- MiBarra ---")
	return sb.String()
}

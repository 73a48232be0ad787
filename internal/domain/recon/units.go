// Package recon implementa el motor de reconciliación de ventas: normaliza un
// export tabular del POS, hace matching difuso contra el catálogo de botellas,
// descuenta el consumo del stock y construye el reporte de pedido.
//
// El paquete es puro: no hace I/O, no tiene estado ambiente y es determinista
// (mismo catálogo + mismas filas => mismo resultado byte a byte).
package recon

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Etiquetas de unidad por modo de medida.
const (
	UnitLabelUnits = "unidades"
	UnitLabelOz    = "oz"

	UnitShortUnits = "unid"
	UnitShortOz    = "oz"
)

// Factor de conversión ml -> oz (el volumen se almacena en ml, las porciones
// de licores se configuran en oz).
var mlToOz = decimal.NewFromFloat(0.033814)

// Rules define, por categoría, el modo de medida y la porción por venta.
// Es configuración explícita que se pasa al motor en la frontera de llamada:
// el conjunto de categorías discretas es cerrado, no una heurística.
type Rules struct {
	// Discrete contiene las categorías medidas por unidades enteras.
	Discrete map[string]struct{}
	// Portions porción por defecto por categoría (oz para continuas, unidades para discretas).
	Portions map[string]decimal.Decimal
	// Overrides porciones definidas por el caller; un override <= 0 se ignora.
	Overrides map[string]decimal.Decimal
}

// DefaultRules devuelve las reglas de producción: solo la cerveza se mide por
// unidades y las porciones reproducen la configuración histórica de la app.
func DefaultRules() Rules {
	return Rules{
		Discrete: map[string]struct{}{
			"cerveza": {},
		},
		Portions: map[string]decimal.Decimal{
			"vodka":     decimal.NewFromInt(1),
			"tequila":   decimal.NewFromFloat(1.5),
			"whiskey":   decimal.NewFromInt(2),
			"whisky":    decimal.NewFromInt(2),
			"ron":       decimal.NewFromFloat(1.5),
			"gin":       decimal.NewFromInt(1),
			"ginebra":   decimal.NewFromInt(1),
			"cerveza":   decimal.NewFromInt(1),
			"mezcal":    decimal.NewFromFloat(1.5),
			"vino":      decimal.NewFromInt(5),
			"champagne": decimal.NewFromInt(5),
			"brandy":    decimal.NewFromInt(2),
			"licores":   decimal.NewFromInt(1),
			"pisco":     decimal.NewFromFloat(1.5),
			"sidra":     decimal.NewFromInt(5),
		},
	}
}

// WithOverrides devuelve una copia de las reglas con porciones sobreescritas
// por el caller. Valores <= 0 se descartan (se mantiene el default).
func (r Rules) WithOverrides(overrides map[string]decimal.Decimal) Rules {
	out := r
	out.Overrides = make(map[string]decimal.Decimal, len(overrides))
	for cat, p := range overrides {
		if p.IsPositive() {
			out.Overrides[strings.ToLower(cat)] = p
		}
	}
	return out
}

// IsDiscrete indica si la categoría se mide por unidades enteras.
// Las categorías fuera del conjunto son continuas (volumen).
func (r Rules) IsDiscrete(category string) bool {
	_, ok := r.Discrete[strings.ToLower(category)]
	return ok
}

// UnitLabel devuelve la etiqueta de unidad de la categoría ("unidades" u "oz").
func (r Rules) UnitLabel(category string) string {
	if r.IsDiscrete(category) {
		return UnitLabelUnits
	}
	return UnitLabelOz
}

// UnitShortLabel devuelve la etiqueta corta ("unid" u "oz") usada en el reporte.
func (r Rules) UnitShortLabel(category string) string {
	if r.IsDiscrete(category) {
		return UnitShortUnits
	}
	return UnitShortOz
}

// Portion devuelve la porción descontada por una venta de la categoría:
// override del caller si es > 0, si no el default, si no 1.
func (r Rules) Portion(category string) decimal.Decimal {
	key := strings.ToLower(category)
	if p, ok := r.Overrides[key]; ok && p.IsPositive() {
		return p
	}
	if p, ok := r.Portions[key]; ok && p.IsPositive() {
		return p
	}
	return decimal.NewFromInt(1)
}

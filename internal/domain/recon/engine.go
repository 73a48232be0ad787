package recon

import (
	"github.com/shopspring/decimal"

	"github.com/mibarra/mibarra-api/internal/domain"
	"github.com/mibarra/mibarra-api/internal/domain/entity"
)

// Config agrupa los parámetros del motor. Los umbrales son configurables con
// los valores observados en producción como defaults.
type Config struct {
	Rules             Rules
	MatchThreshold    float64 // fracción mínima de tokens cubiertos (default 0.5)
	LowStockThreshold float64 // porcentaje restante bajo el cual se reporta (default 25)
}

// DefaultConfig devuelve la configuración de producción.
func DefaultConfig() Config {
	return Config{
		Rules:             DefaultRules(),
		MatchThreshold:    0.5,
		LowStockThreshold: 25,
	}
}

// Deduction registra la intención de descuento de UNA fila que hizo match.
// Amount es la cantidad solicitada completa (sin clamping): el reporte refleja
// la intención, no solo el efecto físico sobre un stock casi vacío.
type Deduction struct {
	BottleID   string
	BottleName string
	Amount     decimal.Decimal // unidades enteras para discretas, oz para continuas
	Unit       string          // "unidades" | "oz"
}

// Result es la salida de una corrida de reconciliación. Catalog es una copia
// de trabajo actualizada; la propiedad pasa al caller (el motor no persiste).
type Result struct {
	Catalog   []entity.Bottle
	Applied   []Deduction // una entrada por fila aplicada, en orden de archivo
	Unmatched []string    // nombres sin match, deduplicados, en orden de aparición
}

// Reconcile aplica las filas de venta normalizadas contra una copia del
// catálogo: match difuso por fila, descuento según el modo de medida de la
// categoría y clamping en 0. Filas sucesivas sobre la misma botella se
// acumulan secuencialmente en orden de entrada (el orden afecta el clamping).
//
// Falla solo con catálogo vacío (error de precondición del caller); un lote
// sin filas devuelve un resultado vacío con el catálogo sin cambios de valor.
func Reconcile(catalog []entity.Bottle, rows []SalesRow, cfg Config) (*Result, error) {
	if len(catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	working := make([]entity.Bottle, len(catalog))
	for i := range catalog {
		working[i] = catalog[i].Clone()
	}

	res := &Result{Catalog: working}
	seen := make(map[string]struct{})

	for _, row := range rows {
		idx, ok := MatchBottle(row.Product, working, cfg.MatchThreshold)
		if !ok {
			if _, dup := seen[row.Product]; !dup {
				seen[row.Product] = struct{}{}
				res.Unmatched = append(res.Unmatched, row.Product)
			}
			continue
		}

		b := &working[idx]
		amount := row.Quantity.Mul(cfg.Rules.Portion(b.Category))

		if cfg.Rules.IsDiscrete(b.Category) {
			units := amount.Round(0)
			deductUnits(b, units.IntPart())
			res.Applied = append(res.Applied, Deduction{
				BottleID:   b.ID,
				BottleName: b.Name,
				Amount:     units,
				Unit:       UnitLabelUnits,
			})
		} else {
			deductVolume(b, amount.Div(mlToOz)) // porción en oz -> ml nativos
			res.Applied = append(res.Applied, Deduction{
				BottleID:   b.ID,
				BottleName: b.Name,
				Amount:     amount,
				Unit:       UnitLabelOz,
			})
		}
	}
	return res, nil
}

// Capacidad en unidades asumida cuando una botella discreta no la define.
const fallbackCapacityUnits = int64(100)

// unitState devuelve el par (capacidad, restante) en unidades de una botella
// discreta. Si los campos explícitos faltan, deriva el restante escalando el
// volumen (fallback, nunca segunda fuente de verdad).
func unitState(b *entity.Bottle) (capUnits, remUnits int64) {
	capUnits = fallbackCapacityUnits
	if b.CapacityUnits != nil && *b.CapacityUnits > 0 {
		capUnits = *b.CapacityUnits
	}
	if b.RemainingUnits != nil {
		return capUnits, *b.RemainingUnits
	}
	if b.Capacity.IsPositive() {
		ratio := b.Remaining.Div(b.Capacity)
		remUnits = decimal.NewFromInt(capUnits).Mul(ratio).Round(0).IntPart()
	}
	return capUnits, remUnits
}

// deductUnits descuenta unidades enteras con piso en 0 y refleja el volumen
// proporcionalmente para que ambas representaciones queden consistentes.
// El par de unidades es la representación primaria de las discretas.
func deductUnits(b *entity.Bottle, units int64) {
	capUnits, remUnits := unitState(b)
	remUnits -= units
	if remUnits < 0 {
		remUnits = 0
	}
	b.CapacityUnits = &capUnits
	b.RemainingUnits = &remUnits
	if capUnits > 0 && b.Capacity.IsPositive() {
		b.Remaining = b.Capacity.Mul(decimal.NewFromInt(remUnits)).Div(decimal.NewFromInt(capUnits))
	}
}

// deductVolume descuenta ml del restante con piso en 0.
func deductVolume(b *entity.Bottle, ml decimal.Decimal) {
	next := b.Remaining.Sub(ml)
	if next.IsNegative() {
		next = decimal.Zero
	}
	b.Remaining = next
}

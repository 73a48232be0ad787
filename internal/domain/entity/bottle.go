package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bottle representa una botella/barril/caja del inventario de una barra.
// El volumen (Capacity/Remaining) está siempre en ml. Para categorías discretas
// (ej. cerveza) CapacityUnits/RemainingUnits llevan el conteo como valores de
// primera clase; si no están definidos, el conteo se deriva proporcionalmente
// del volumen. Invariante: 0 <= Remaining <= Capacity.
type Bottle struct {
	ID        string
	BarID     string
	Name      string // clave principal de matching contra ventas
	Brand     string
	Category  string          // "cerveza", "tequila", ... (decide modo de medida y porción)
	Capacity  decimal.Decimal // ml nominales con la botella llena
	Remaining decimal.Decimal // ml actuales
	// Conteo por unidades (solo categorías discretas). nil = derivar del volumen.
	CapacityUnits  *int64
	RemainingUnits *int64
	ImageURL       string
	Type           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Clone devuelve una copia independiente de la botella (los punteros de unidades
// se duplican para que mutar la copia no toque el original).
func (b Bottle) Clone() Bottle {
	c := b
	if b.CapacityUnits != nil {
		v := *b.CapacityUnits
		c.CapacityUnits = &v
	}
	if b.RemainingUnits != nil {
		v := *b.RemainingUnits
		c.RemainingUnits = &v
	}
	return c
}

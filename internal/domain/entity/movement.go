package entity

import "time"

// Tipos de movimiento registrados en la bitácora.
const (
	MovementTypeSalesImport  = "sales_import"  // importación de export de ventas
	MovementTypeManualAdjust = "manual_adjust" // ajuste manual de una botella
)

// Movement es una entrada de la bitácora de cambios del inventario.
// Para sales_import, BottleID es "_" y NewValue es el número de ventas aplicadas.
type Movement struct {
	ID          string
	BarID       string
	Type        string
	BottleID    string
	BottleName  string
	NewValue    float64
	UserName    string
	Description string
	CreatedAt   time.Time
}

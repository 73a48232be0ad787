package entity

import "time"

// Bar representa la barra de un usuario (el catálogo de botellas le pertenece).
type Bar struct {
	ID                 string
	UserID             string
	Name               string // aparece en el encabezado del reporte de pedido
	SoftRestaurantCode string // código del POS del que provienen los exports de ventas
	LastImportAt       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

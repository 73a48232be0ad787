package dto

import "time"

// ImportSalesRequest cuerpo JSON de la importación de ventas: filas crudas
// (clave de columna -> valor) ya extraídas del archivo, más overrides
// opcionales de porción por categoría.
type ImportSalesRequest struct {
	Rows             []map[string]any   `json:"rows"`
	PortionOverrides map[string]float64 `json:"portion_overrides,omitempty"`
}

// ImportSummary resumen de una importación para el usuario: conteos y
// vista previa truncada de lo aplicado y lo no reconocido.
type ImportSummary struct {
	Applied   int      `json:"applied"`
	Unmatched int      `json:"unmatched"`
	Details   []string `json:"details"`
	Message   string   `json:"message"`
}

// ReportLineDTO línea estructurada del reporte de pedido.
type ReportLineDTO struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Reason   string `json:"reason"` // "por_pedir" | "bajo_25"
}

// ReportResponse reporte de pedido listo para mostrar o compartir.
type ReportResponse struct {
	Text        string          `json:"text"`
	Lines       []ReportLineDTO `json:"lines"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// MovementResponse entrada de bitácora para respuestas HTTP.
type MovementResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	BottleID    string    `json:"bottle_id"`
	BottleName  string    `json:"bottle_name"`
	NewValue    float64   `json:"new_value"`
	UserName    string    `json:"user_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

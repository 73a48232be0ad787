package recon

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RawRow es una fila cruda del export de ventas: clave de columna -> valor
// escalar (string, número o vacío). El caller es responsable de convertir el
// archivo subido (Excel/CSV) en estas filas; el motor no lee archivos.
type RawRow map[string]any

// SalesRow es una fila de ventas ya normalizada.
type SalesRow struct {
	Product  string
	Quantity decimal.Decimal
}

// Tabla de patrones de encabezado. La clasificación de columnas se hace UNA
// vez por lote (se asume esquema consistente en todo el archivo) y por
// contención, insensible a mayúsculas y acentos. El orden define prioridad.
var (
	productHeaderPatterns  = []string{"producto", "nombre", "descripcion", "item", "articulo"}
	quantityHeaderPatterns = []string{"cantidad", "vendido", "unidades", "qty"}
)

// NormalizeRows convierte filas crudas de encabezados desconocidos en filas de
// venta canónicas, en el orden del archivo.
//
// Si no se puede identificar una columna de producto o una de cantidad, el
// lote produce cero filas (no es un error: indica al caller que el archivo no
// tiene forma reconocible de ventas). Filas individuales con cantidad ausente,
// no numérica, no finita o negativa se descartan en silencio.
func NormalizeRows(rows []RawRow) []SalesRow {
	if len(rows) == 0 {
		return nil
	}
	productKey, quantityKey, ok := resolveColumns(rows[0])
	if !ok {
		return nil
	}

	out := make([]SalesRow, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(asString(row[productKey]))
		if name == "" {
			continue
		}
		qty, ok := parseQuantity(row[quantityKey])
		if !ok {
			continue
		}
		out = append(out, SalesRow{Product: name, Quantity: qty})
	}
	return out
}

// resolveColumns clasifica los encabezados de la primera fila contra la tabla
// de patrones. Las claves se recorren ordenadas para que el resultado sea
// determinista aunque el mapa no tenga orden.
func resolveColumns(row RawRow) (productKey, quantityKey string, ok bool) {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	productKey = findColumn(keys, productHeaderPatterns, "")
	if productKey == "" {
		return "", "", false
	}
	quantityKey = findColumn(keys, quantityHeaderPatterns, productKey)
	if quantityKey == "" {
		return "", "", false
	}
	return productKey, quantityKey, true
}

// findColumn devuelve la primera clave cuyo encabezado normalizado contiene
// alguno de los patrones, respetando el orden de prioridad de la tabla.
func findColumn(keys []string, patterns []string, exclude string) string {
	for _, pattern := range patterns {
		for _, k := range keys {
			if k == exclude {
				continue
			}
			if strings.Contains(normalizeText(k), pattern) {
				return k
			}
		}
	}
	return ""
}

// parseQuantity interpreta el valor de la celda de cantidad. Acepta números y
// strings numéricos (con coma decimal de exports en español). Valores no
// finitos o negativos invalidan la fila.
func parseQuantity(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return quantityFromFloat(n)
	case float32:
		return quantityFromFloat(float64(n))
	case int:
		return quantityFromFloat(float64(n))
	case int64:
		return quantityFromFloat(float64(n))
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(n, ",", "."))
		if s == "" {
			return decimal.Decimal{}, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return quantityFromFloat(f)
	default:
		return decimal.Decimal{}, false
	}
}

func quantityFromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

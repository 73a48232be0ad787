package recon_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mibarra/mibarra-api/internal/domain/entity"
	"github.com/mibarra/mibarra-api/internal/domain/recon"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del reporte de pedido: categorización, deduplicación, plantilla fija
// e idempotencia con timestamp congelado.
// ──────────────────────────────────────────────────────────────────────────────

var frozenAt = time.Date(2026, 2, 8, 11, 45, 0, 0, time.UTC)

func TestBuildReport_ContinuaAl20PorcientoEntraEnBajoStock(t *testing.T) {
	catalog := []entity.Bottle{{
		Name:      "Don Julio Reposado",
		Category:  "tequila",
		Capacity:  decimal.NewFromInt(750),
		Remaining: decimal.NewFromInt(150), // 20%
	}}

	rep := recon.BuildReport(catalog, "Bar Test", frozenAt, recon.DefaultConfig())

	require.Len(t, rep.Lines, 1)
	assert.Equal(t, recon.ReasonLowStock, rep.Lines[0].Reason)
	assert.Equal(t, "Don Julio Reposado", rep.Lines[0].Name)
	assert.Equal(t, "20% (5.1 oz rest.)", rep.Lines[0].Quantity)
	assert.Contains(t, rep.Text, "POR DEBAJO DEL 25%:")
	assert.NotContains(t, rep.Text, "POR PEDIR")
}

func TestBuildReport_DiscretaBajoCapacidadEntraEnPorPedir(t *testing.T) {
	catalog := []entity.Bottle{{
		Name:           "Cerveza Corona",
		Category:       "cerveza",
		CapacityUnits:  i64(100),
		RemainingUnits: i64(60),
	}}

	rep := recon.BuildReport(catalog, "Bar Test", frozenAt, recon.DefaultConfig())

	require.Len(t, rep.Lines, 1)
	assert.Equal(t, recon.ReasonRestock, rep.Lines[0].Reason)
	assert.Equal(t, "40 unid", rep.Lines[0].Quantity)
}

func TestBuildReport_EnAmbasListasSoloSeEmitePorPedir(t *testing.T) {
	catalog := []entity.Bottle{{
		Name:           "Cerveza Corona",
		Category:       "cerveza",
		CapacityUnits:  i64(100),
		RemainingUnits: i64(10), // 10% restante: por pedir Y bajo el umbral
	}}

	rep := recon.BuildReport(catalog, "Bar Test", frozenAt, recon.DefaultConfig())

	require.Len(t, rep.Lines, 1, "una botella en ambas listas sale una sola vez")
	assert.Equal(t, recon.ReasonRestock, rep.Lines[0].Reason)
	assert.Equal(t, "90 unid", rep.Lines[0].Quantity)
	assert.NotContains(t, rep.Text, "POR DEBAJO DEL 25%:")
}

func TestBuildReport_OrdenEstable(t *testing.T) {
	catalog := []entity.Bottle{
		{
			Name: "Absolut", Category: "vodka",
			Capacity: decimal.NewFromInt(750), Remaining: decimal.NewFromInt(75), // 10%
		},
		{
			Name: "Cerveza Corona", Category: "cerveza",
			CapacityUnits: i64(100), RemainingUnits: i64(70),
		},
		{
			Name: "Zacapa 23", Category: "ron",
			Capacity: decimal.NewFromInt(750), Remaining: decimal.NewFromInt(100), // ~13%
		},
	}

	rep := recon.BuildReport(catalog, "Bar Test", frozenAt, recon.DefaultConfig())

	// POR PEDIR primero (orden de catálogo), luego bajo-umbral (orden de catálogo).
	require.Len(t, rep.Lines, 3)
	assert.Equal(t, "Cerveza Corona", rep.Lines[0].Name)
	assert.Equal(t, "Absolut", rep.Lines[1].Name)
	assert.Equal(t, "Zacapa 23", rep.Lines[2].Name)
}

func TestBuildReport_PlantillaCompleta(t *testing.T) {
	catalog := []entity.Bottle{
		{
			Name: "Cerveza Corona", Category: "cerveza",
			CapacityUnits: i64(100), RemainingUnits: i64(88),
		},
		{
			Name: "Absolut", Category: "vodka",
			Capacity: decimal.NewFromInt(750), Remaining: decimal.NewFromInt(75),
		},
	}

	rep := recon.BuildReport(catalog, "La Cantina", frozenAt, recon.DefaultConfig())

	expected := strings.Join([]string{
		"PEDIDO - La Cantina",
		"Generado: 08/02/2026 11:45",
		strings.Repeat("=", 32),
		"",
		"POR PEDIR (unidades):",
		"• Cerveza Corona: 12 unid",
		"",
		"POR DEBAJO DEL 25%:",
		"• Absolut: 10% (2.5 oz rest.)",
		"",
		"",
		"--- MiBarra ---",
	}, "\n")
	assert.Equal(t, expected, rep.Text)
}

func TestBuildReport_BarraBienSurtida(t *testing.T) {
	catalog := []entity.Bottle{{
		Name:      "Absolut",
		Category:  "vodka",
		Capacity:  decimal.NewFromInt(750),
		Remaining: decimal.NewFromInt(700),
	}}

	rep := recon.BuildReport(catalog, "Bar Test", frozenAt, recon.DefaultConfig())

	assert.Empty(t, rep.Lines)
	assert.Contains(t, rep.Text, "Barra bien surtida.")
}

func TestBuildReport_IdempotenteConTimestampCongelado(t *testing.T) {
	catalog := []entity.Bottle{
		{
			Name: "Cerveza Corona", Category: "cerveza",
			CapacityUnits: i64(100), RemainingUnits: i64(40),
		},
		{
			Name: "Absolut", Category: "vodka",
			Capacity: decimal.NewFromInt(750), Remaining: decimal.NewFromInt(80),
		},
	}

	r1 := recon.BuildReport(catalog, "Bar Test", frozenAt, recon.DefaultConfig())
	r2 := recon.BuildReport(catalog, "Bar Test", frozenAt, recon.DefaultConfig())

	assert.Equal(t, r1.Text, r2.Text, "mismo catálogo y timestamp => texto idéntico byte a byte")
	assert.Equal(t, r1.Lines, r2.Lines)
}

func TestBuildReport_UmbralConfigurable(t *testing.T) {
	catalog := []entity.Bottle{{
		Name:      "Absolut",
		Category:  "vodka",
		Capacity:  decimal.NewFromInt(750),
		Remaining: decimal.NewFromInt(300), // 40%
	}}
	cfg := recon.DefaultConfig()
	cfg.LowStockThreshold = 50

	rep := recon.BuildReport(catalog, "Bar Test", frozenAt, cfg)

	require.Len(t, rep.Lines, 1)
	assert.Contains(t, rep.Text, "POR DEBAJO DEL 50%:")
}

package recon_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mibarra/mibarra-api/internal/domain/recon"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del modelo de unidades: conjunto cerrado de categorías discretas,
// porciones por defecto y overrides del caller.
// ──────────────────────────────────────────────────────────────────────────────

func TestRules_CervezaEsDiscreta(t *testing.T) {
	rules := recon.DefaultRules()

	assert.True(t, rules.IsDiscrete("cerveza"))
	assert.True(t, rules.IsDiscrete("Cerveza"), "la categoría es insensible a mayúsculas")
	assert.Equal(t, "unidades", rules.UnitLabel("cerveza"))
	assert.Equal(t, "unid", rules.UnitShortLabel("CERVEZA"))
}

func TestRules_CategoriaDesconocidaEsContinua(t *testing.T) {
	rules := recon.DefaultRules()

	// Fuera del conjunto explícito todo es continuo; no hay heurística.
	assert.False(t, rules.IsDiscrete("tequila"))
	assert.False(t, rules.IsDiscrete("categoria-inventada"))
	assert.Equal(t, "oz", rules.UnitLabel("tequila"))
}

func TestRules_PorcionesPorDefecto(t *testing.T) {
	rules := recon.DefaultRules()

	assert.True(t, decimal.NewFromFloat(1.5).Equal(rules.Portion("tequila")))
	assert.True(t, decimal.NewFromInt(2).Equal(rules.Portion("whisky")))
	assert.True(t, decimal.NewFromInt(5).Equal(rules.Portion("vino")))
	assert.True(t, decimal.NewFromInt(1).Equal(rules.Portion("cerveza")))
	assert.True(t, decimal.NewFromInt(1).Equal(rules.Portion("desconocida")),
		"una categoría sin porción configurada usa 1")
}

func TestRules_OverrideDelCaller(t *testing.T) {
	rules := recon.DefaultRules().WithOverrides(map[string]decimal.Decimal{
		"tequila": decimal.NewFromInt(2),
		"Vodka":   decimal.NewFromFloat(0.75),
	})

	assert.True(t, decimal.NewFromInt(2).Equal(rules.Portion("tequila")))
	assert.True(t, decimal.NewFromFloat(0.75).Equal(rules.Portion("VODKA")),
		"el override aplica sin importar mayúsculas")
}

func TestRules_OverrideNoPositivoSeIgnora(t *testing.T) {
	rules := recon.DefaultRules().WithOverrides(map[string]decimal.Decimal{
		"tequila": decimal.Zero,
		"ron":     decimal.NewFromInt(-3),
	})

	assert.True(t, decimal.NewFromFloat(1.5).Equal(rules.Portion("tequila")),
		"override 0 debe caer al default")
	assert.True(t, decimal.NewFromFloat(1.5).Equal(rules.Portion("ron")),
		"override negativo debe caer al default")
}

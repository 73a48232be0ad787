package recon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mibarra/mibarra-api/internal/domain/entity"
)

// MatchBottle busca la botella del catálogo que mejor explica el nombre de
// producto de una fila de ventas.
//
// Puntaje: ratio de contención de tokens en [0,1] — fracción de los tokens del
// nombre de venta que aparecen (como token o substring) en nombre+marca
// normalizados de la botella. Gana el puntaje máximo estricto si alcanza el
// umbral; empates al máximo se resuelven por el nombre de botella más corto
// (el match más específico). Es una regla determinista y auditable a propósito:
// las decisiones de pedido deben poder explicarse desde el reporte.
//
// Devuelve el índice dentro del catálogo y false si no hay match.
func MatchBottle(product string, catalog []entity.Bottle, threshold float64) (int, bool) {
	rowTokens := tokenize(product)
	if len(rowTokens) == 0 {
		return 0, false
	}

	bestIdx := -1
	bestScore := 0.0
	bestNameLen := 0
	for i := range catalog {
		target := normalizeText(catalog[i].Name + " " + catalog[i].Brand)
		score := containmentScore(rowTokens, target)
		nameLen := len(normalizeText(catalog[i].Name))
		if score > bestScore || (score == bestScore && bestIdx >= 0 && score > 0 && nameLen < bestNameLen) {
			bestIdx = i
			bestScore = score
			bestNameLen = nameLen
		}
	}
	if bestIdx < 0 || bestScore < threshold {
		return 0, false
	}
	return bestIdx, true
}

// containmentScore cuenta cuántos tokens de la venta aparecen en el texto
// objetivo y lo divide entre el total de tokens de la venta.
func containmentScore(rowTokens []string, target string) float64 {
	if target == "" {
		return 0
	}
	hits := 0
	for _, tok := range rowTokens {
		if strings.Contains(target, tok) {
			hits++
		}
	}
	return float64(hits) / float64(len(rowTokens))
}

var diacriticsStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText pasa a minúsculas, elimina acentos, reemplaza puntuación por
// espacio y colapsa espacios repetidos.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	if stripped, _, err := transform.String(diacriticsStripper, s); err == nil {
		s = stripped
	}
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func tokenize(s string) []string {
	return strings.Fields(normalizeText(s))
}

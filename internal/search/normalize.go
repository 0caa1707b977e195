// Package search normaliza términos de búsqueda para comparaciones
// insensibles a mayúsculas y tildes ("María" casa con "maria").
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve el término en minúsculas y sin marcas diacríticas.
// Si la transformación falla (entrada no UTF-8 válida) devuelve el término
// original en minúsculas.
func Fold(termino string) string {
	plano, _, err := transform.String(folder, termino)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(termino))
	}
	return strings.ToLower(strings.TrimSpace(plano))
}

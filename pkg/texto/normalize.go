// Package texto ofrece normalización de texto para búsquedas insensibles a
// acentos y mayúsculas (los nombres de clientes y choferes venezolanos llevan
// tildes que el usuario rara vez teclea al buscar).
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize quita diacríticos y pasa a minúsculas: "Pérez Álvarez" -> "perez alvarez".
func Normalize(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contains indica si haystack contiene needle comparando normalizado.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

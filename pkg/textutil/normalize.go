// Package textutil normaliza texto para comparaciones de unicidad del
// catálogo: los nombres llegan en español ("Limón", "limon") y deben chocar
// entre sí aunque difieran en acentos o mayúsculas.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // quita marcas diacríticas
	norm.NFC,
)

// Fold devuelve la clave de comparación de un nombre: sin acentos, en
// minúsculas y con espacios colapsados.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Package codes centraliza la numeración de códigos legibles (A00001,
// M000001, OS000001...). El original tenía esta lógica copiada y pegada en
// cada modelo; aquí se parametriza una sola vez por prefijo y ancho.
package codes

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifica la familia de códigos de una entidad.
type Kind string

// Familias de códigos del sistema.
const (
	KindUser      Kind = "user"
	KindCustomer  Kind = "customer"
	KindSupplier  Kind = "supplier"
	KindCategory  Kind = "category"
	KindArticle   Kind = "article"
	KindWarehouse Kind = "warehouse"
	KindMovement  Kind = "movement"
	KindOrder     Kind = "order"
)

// Spec describe el patrón prefijo+ancho de una familia de códigos.
type Spec struct {
	Prefix string
	Width  int
}

var specs = map[Kind]Spec{
	KindUser:      {Prefix: "", Width: 4},
	KindCustomer:  {Prefix: "C", Width: 6},
	KindSupplier:  {Prefix: "P", Width: 6},
	KindCategory:  {Prefix: "T", Width: 3},
	KindArticle:   {Prefix: "A", Width: 5},
	KindWarehouse: {Prefix: "A", Width: 3},
	KindMovement:  {Prefix: "M", Width: 6},
	KindOrder:     {Prefix: "OS", Width: 6},
}

// SpecFor devuelve el patrón de una familia.
func SpecFor(kind Kind) (Spec, bool) {
	s, ok := specs[kind]
	return s, ok
}

// Format produce el código para un número de secuencia, ej. (A,5,7) -> "A00007".
func (s Spec) Format(n int) string {
	return fmt.Sprintf("%s%0*d", s.Prefix, s.Width, n)
}

// Parse extrae el número de secuencia de un código. Devuelve false si el
// código no calza con el patrón prefijo+ancho.
func (s Spec) Parse(code string) (int, bool) {
	if !strings.HasPrefix(code, s.Prefix) {
		return 0, false
	}
	digits := code[len(s.Prefix):]
	if len(digits) != s.Width {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NextAfter devuelve el siguiente número de secuencia después del código más
// alto existente. Falla cerrado: si el código no se puede interpretar (o está
// vacío) la numeración reinicia en 1 en vez de abortar.
func (s Spec) NextAfter(highest string) int {
	if n, ok := s.Parse(highest); ok {
		return n + 1
	}
	return 1
}

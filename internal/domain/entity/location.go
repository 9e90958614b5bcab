package entity

import "time"

// Tipos de locación del resort.
const (
	LocationVilla = "villa"
	LocationMesa  = "mesa"
)

// Location representa una villa o una mesa del resort. El código lo asigna
// el operador (V-12, M-03...), no el generador de códigos.
type Location struct {
	ID        string
	Kind      string // villa, mesa
	Code      string // único
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidLocationKind valida el tipo de locación.
func ValidLocationKind(kind string) bool {
	return kind == LocationVilla || kind == LocationMesa
}

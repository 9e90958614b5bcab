package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida de un artículo.
const (
	UnitUnidad     = "unidad"
	UnitKg         = "kg"
	UnitLitro      = "litro"
	UnitMetro      = "metro"
	UnitCentimetro = "centimetro"
	UnitGramo      = "gramo"
	UnitMililitro  = "mililitro"
)

// unitLabels etiquetas legibles para la consulta de stock.
var unitLabels = map[string]string{
	UnitUnidad:     "Unidad",
	UnitKg:         "Kilogramo",
	UnitLitro:      "Litro",
	UnitMetro:      "Metro",
	UnitCentimetro: "Centímetro",
	UnitGramo:      "Gramo",
	UnitMililitro:  "Mililitro",
}

// Article representa un artículo del catálogo (multi-almacén).
// No tiene campo de cantidad: el stock vive exclusivamente en la tabla stock
// por (artículo, almacén) y el total se deriva sumando esas entradas.
type Article struct {
	ID         string
	Code       string // código generado A00001, inmutable
	Name       string // único (comparación sin acentos)
	CategoryID string
	Unit       string          // unidad de medida enumerada
	UnitPrice  decimal.Decimal // precio de venta por unidad
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidUnit valida la unidad de medida.
func ValidUnit(unit string) bool {
	_, ok := unitLabels[unit]
	return ok
}

// UnitLabel devuelve la etiqueta legible de una unidad ("" si es desconocida).
func UnitLabel(unit string) string {
	return unitLabels[unit]
}

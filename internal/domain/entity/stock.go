package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la cantidad disponible de un artículo en un almacén.
// Clave (ArticleID, WarehouseID); invariante: Quantity >= 0 tras todo commit.
// Se crea perezosamente con el primer movimiento que toca el par y solo se
// muta por la vía de registro de movimientos.
type Stock struct {
	ArticleID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}

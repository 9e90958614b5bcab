package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem representa una línea de una orden de servicio. Pertenece a
// exactamente una orden (borrado en cascada con ella).
type OrderItem struct {
	ID          string
	OrderID     string
	ArticleID   string
	WarehouseID string // almacén desde el que se surte la línea
	Quantity    int    // entero positivo
	UnitPrice   decimal.Decimal
	CreatedBy   string // UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Subtotal devuelve cantidad × precio unitario. Derivado, nunca se persiste.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

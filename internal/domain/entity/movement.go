package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
	MovementAjuste  = "ajuste"
)

// Movement representa un movimiento de inventario ya confirmado. Es inmutable:
// no existe vía de actualización ni de borrado; las correcciones se hacen con
// un ajuste compensatorio.
//
// Convención de signo en Quantity: entrada positiva, salida guardada como
// magnitud negativa, ajuste con el signo que indique el solicitante.
type Movement struct {
	ID          string
	Code        string // código generado M000001, monotónico
	ArticleID   string
	WarehouseID string
	Kind        string          // entrada, salida, ajuste
	Quantity    decimal.Decimal // delta firmado aplicado al stock
	OrderID     string          // orden de origen, vacío si no aplica
	Reason      string          // motivo, obligatorio solo en ajustes
	Description string
	CreatedAt   time.Time // fijado una sola vez al registrar
	CreatedBy   string    // UserID
}

// ValidMovementKind valida el tipo de movimiento.
func ValidMovementKind(kind string) bool {
	switch kind {
	case MovementEntrada, MovementSalida, MovementAjuste:
		return true
	}
	return false
}

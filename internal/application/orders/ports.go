package orders

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dcontreras/resort-ops/internal/application/inventory"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

// MovementRecorder registra un movimiento de inventario dentro de la
// transacción del caller. Lo implementa inventory.MovementUseCase; la orden
// lo usa para surtir, devolver y compensar líneas sin duplicar la lógica de
// bloqueo y verificación de stock.
type MovementRecorder interface {
	RegisterInTx(ctx context.Context, r repository.TxRepos, in inventory.MovementInput) (*entity.Movement, error)
}

// ReceiptLine línea renderizable del recibo de una orden.
type ReceiptLine struct {
	ArticleName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptGenerator produce el PDF del recibo de una orden cerrada o
// facturada. Implementado en infrastructure/pdf con Maroto.
type ReceiptGenerator interface {
	Generate(order *entity.Order, customerName string, lines []ReceiptLine) ([]byte, error)
}

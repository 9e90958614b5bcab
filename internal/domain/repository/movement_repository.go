package repository

import (
	"context"
	"time"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// MovementRepository define el puerto del diario de movimientos de inventario.
// Solo inserción y lectura: los movimientos son inmutables después del commit.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	ListByArticle(ctx context.Context, articleID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	ListByWarehouse(ctx context.Context, warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entity.Movement, error)
}

package repository

import (
	"context"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia de almacenes.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
}

package repository

import (
	"context"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia de órdenes de servicio y
// sus líneas. Las líneas pertenecen en exclusiva a su orden (cascada).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetForUpdate bloquea la cabecera de la orden para serializar mutaciones
	// concurrentes sobre la misma orden.
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error)

	CreateItem(ctx context.Context, item *entity.OrderItem) error
	GetItem(ctx context.Context, orderID, itemID string) (*entity.OrderItem, error)
	UpdateItem(ctx context.Context, item *entity.OrderItem) error
	DeleteItem(ctx context.Context, orderID, itemID string) error
	ListItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
}

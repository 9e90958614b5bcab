package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas viven en order_items con FK ON DELETE CASCADE hacia orders.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia de órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, code, user_id, customer_id, customer_document, villa_code, mesa_code, status, service_pct, tax_pct, discount_pct, net_total, final_total, created_at, closed_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.Code, &o.UserID, &o.CustomerID, &o.CustomerDocument,
		&o.VillaCode, &o.MesaCode, &o.Status, &o.ServicePct, &o.TaxPct, &o.DiscountPct,
		&o.NetTotal, &o.FinalTotal, &o.CreatedAt, &o.ClosedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste la cabecera de una orden.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Code, o.UserID, o.CustomerID, o.CustomerDocument, o.VillaCode, o.MesaCode,
		o.Status, o.ServicePct, o.TaxPct, o.DiscountPct, o.NetTotal, o.FinalTotal,
		o.CreatedAt, o.ClosedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetForUpdate obtiene la orden bloqueando la cabecera (SELECT ... FOR UPDATE)
// para serializar mutaciones concurrentes sobre la misma orden.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order for update: %w", err)
	}
	return o, nil
}

// Update actualiza la cabecera. El código, el creador y la foto del cliente
// no se tocan.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders
		SET status = $2, service_pct = $3, tax_pct = $4, discount_pct = $5,
		    net_total = $6, final_total = $7, closed_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Status, o.ServicePct, o.TaxPct, o.DiscountPct, o.NetTotal, o.FinalTotal, o.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// List lista órdenes, más reciente primero, opcionalmente filtradas por estado.
func (r *OrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

const orderItemColumns = `id, order_id, article_id, warehouse_id, quantity, unit_price, created_by, created_at, updated_at`

func scanOrderItem(row pgx.Row) (*entity.OrderItem, error) {
	var i entity.OrderItem
	err := row.Scan(&i.ID, &i.OrderID, &i.ArticleID, &i.WarehouseID, &i.Quantity,
		&i.UnitPrice, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// CreateItem inserta una línea de la orden.
func (r *OrderRepo) CreateItem(ctx context.Context, i *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (` + orderItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.OrderID, i.ArticleID, i.WarehouseID, i.Quantity, i.UnitPrice,
		i.CreatedBy, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetItem obtiene una línea por orden e ID.
func (r *OrderRepo) GetItem(ctx context.Context, orderID, itemID string) (*entity.OrderItem, error) {
	i, err := scanOrderItem(r.q.QueryRow(ctx,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 AND id = $2`, orderID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return i, nil
}

// UpdateItem actualiza una línea.
func (r *OrderRepo) UpdateItem(ctx context.Context, i *entity.OrderItem) error {
	query := `
		UPDATE order_items
		SET article_id = $2, warehouse_id = $3, quantity = $4, unit_price = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, i.ID, i.ArticleID, i.WarehouseID, i.Quantity, i.UnitPrice, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// DeleteItem elimina una línea.
func (r *OrderRepo) DeleteItem(ctx context.Context, orderID, itemID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1 AND id = $2`, orderID, itemID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

// ListItems líneas de una orden en orden de inserción.
func (r *OrderRepo) ListItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderItem
	for rows.Next() {
		i, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

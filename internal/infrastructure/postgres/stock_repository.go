package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
// Clave primaria (article_id, warehouse_id). Devuelve nil cuando el par no
// tiene entrada: el caller decide si eso es error o entrada perezosa.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia del libro de stock.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `article_id, warehouse_id, quantity, updated_at`

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ArticleID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Get obtiene la entrada del libro para un par, o nil si no existe.
func (r *StockRepo) Get(ctx context.Context, articleID, warehouseID string) (*entity.Stock, error) {
	s, err := scanStock(r.q.QueryRow(ctx,
		`SELECT `+stockColumns+` FROM stock WHERE article_id = $1 AND warehouse_id = $2`,
		articleID, warehouseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// GetForUpdate igual que Get pero bloqueando la fila (SELECT ... FOR UPDATE)
// para serializar movimientos concurrentes sobre el mismo par.
func (r *StockRepo) GetForUpdate(ctx context.Context, articleID, warehouseID string) (*entity.Stock, error) {
	s, err := scanStock(r.q.QueryRow(ctx,
		`SELECT `+stockColumns+` FROM stock WHERE article_id = $1 AND warehouse_id = $2 FOR UPDATE`,
		articleID, warehouseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// Upsert inserta o actualiza la entrada del libro para el par.
func (r *StockRepo) Upsert(ctx context.Context, s *entity.Stock) error {
	query := `
		INSERT INTO stock (article_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (article_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, s.ArticleID, s.WarehouseID, s.Quantity, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByArticle desglose del stock de un artículo por almacén.
func (r *StockRepo) ListByArticle(ctx context.Context, articleID string) ([]*entity.Stock, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+stockColumns+` FROM stock WHERE article_id = $1 ORDER BY warehouse_id`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var out []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TotalForArticle total del artículo en todos los almacenes. El total no
// vive en ninguna columna: siempre se deriva sumando el libro.
func (r *StockRepo) TotalForArticle(ctx context.Context, articleID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM stock WHERE article_id = $1`, articleID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total stock: %w", err)
	}
	return total, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Solo INSERT y SELECT: no hay UPDATE ni DELETE de movimientos.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia del diario.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, code, article_id, warehouse_id, kind, quantity, order_id, reason, description, created_at, created_by`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var orderID *string
	err := row.Scan(&m.ID, &m.Code, &m.ArticleID, &m.WarehouseID, &m.Kind, &m.Quantity,
		&orderID, &m.Reason, &m.Description, &m.CreatedAt, &m.CreatedBy)
	if err != nil {
		return nil, err
	}
	if orderID != nil {
		m.OrderID = *orderID
	}
	return &m, nil
}

// Create inserta un movimiento confirmado.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Code, m.ArticleID, m.WarehouseID, m.Kind, m.Quantity,
		nullIfEmpty(m.OrderID), m.Reason, m.Description, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByArticle diario de un artículo, más reciente primero, con rango de
// fechas opcional.
func (r *MovementRepo) ListByArticle(ctx context.Context, articleID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.listFiltered(ctx, "article_id", articleID, from, to, limit, offset)
}

// ListByWarehouse diario de un almacén, más reciente primero, con rango de
// fechas opcional.
func (r *MovementRepo) ListByWarehouse(ctx context.Context, warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.listFiltered(ctx, "warehouse_id", warehouseID, from, to, limit, offset)
}

func (r *MovementRepo) listFiltered(ctx context.Context, column, value string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE ` + column + ` = $1`
	args := []any{value}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND created_at <= $%d`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// ListByOrder movimientos generados por una orden, en orden de registro.
func (r *MovementRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+movementColumns+` FROM movements WHERE order_id = $1 ORDER BY created_at`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list movements by order: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

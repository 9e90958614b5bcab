package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, pasando
// repositorios atados a la tx. Commit si fn devuelve nil; rollback ante
// cualquier error, de modo que nunca quede visible una escritura parcial de
// stock, diario u orden.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Tx inicia la transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) Tx(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(txRepos{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// txRepos bundle de repositorios atados a una misma transacción.
type txRepos struct {
	q Querier
}

func (t txRepos) Users() repository.UserRepository           { return NewUserRepository(t.q) }
func (t txRepos) Customers() repository.CustomerRepository   { return NewCustomerRepository(t.q) }
func (t txRepos) Suppliers() repository.SupplierRepository   { return NewSupplierRepository(t.q) }
func (t txRepos) Categories() repository.CategoryRepository  { return NewCategoryRepository(t.q) }
func (t txRepos) Articles() repository.ArticleRepository     { return NewArticleRepository(t.q) }
func (t txRepos) Warehouses() repository.WarehouseRepository { return NewWarehouseRepository(t.q) }
func (t txRepos) Stock() repository.StockRepository          { return NewStockRepository(t.q) }
func (t txRepos) Movements() repository.MovementRepository   { return NewMovementRepository(t.q) }
func (t txRepos) Orders() repository.OrderRepository         { return NewOrderRepository(t.q) }
func (t txRepos) Codes() repository.CodeGenerator            { return NewCodeGenerator(t.q) }

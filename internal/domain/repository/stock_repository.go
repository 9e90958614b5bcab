package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// StockRepository define el puerto del libro de stock por (artículo, almacén).
// Get y GetForUpdate devuelven nil (sin error) cuando el par nunca ha tenido
// stock; cada caso de uso decide si eso es un error o una entrada perezosa
// en cero. La mutación siempre ocurre dentro de una transacción con la fila
// bloqueada (SELECT FOR UPDATE).
type StockRepository interface {
	Get(ctx context.Context, articleID, warehouseID string) (*entity.Stock, error)
	GetForUpdate(ctx context.Context, articleID, warehouseID string) (*entity.Stock, error)
	Upsert(ctx context.Context, stock *entity.Stock) error
	ListByArticle(ctx context.Context, articleID string) ([]*entity.Stock, error)
	TotalForArticle(ctx context.Context, articleID string) (decimal.Decimal, error)
}

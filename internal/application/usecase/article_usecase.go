package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dcontreras/resort-ops/internal/application/inventory"
	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/codes"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

// MovementRecorder registra un movimiento dentro de la transacción del
// caller. Lo implementa inventory.MovementUseCase.
type MovementRecorder interface {
	RegisterInTx(ctx context.Context, r repository.TxRepos, in inventory.MovementInput) (*entity.Movement, error)
}

// ArticleUseCase gestiona el catálogo de artículos. El artículo no guarda
// cantidad: el stock vive en el libro por (artículo, almacén) y aquí solo se
// consulta agregado.
type ArticleUseCase struct {
	tx           repository.TxRunner
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	stockRepo    repository.StockRepository
	recorder     MovementRecorder
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(
	tx repository.TxRunner,
	articleRepo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	stockRepo repository.StockRepository,
	recorder MovementRecorder,
) *ArticleUseCase {
	return &ArticleUseCase{
		tx:           tx,
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		stockRepo:    stockRepo,
		recorder:     recorder,
	}
}

// CreateArticleInput datos para registrar un artículo. Si InitialQuantity es
// positivo, InitialWarehouseID indica dónde nace el stock inicial.
type CreateArticleInput struct {
	Name               string
	CategoryID         string
	Unit               string
	UnitPrice          decimal.Decimal
	InitialQuantity    decimal.Decimal
	InitialWarehouseID string
}

// Create registra un artículo con código A generado. El stock inicial, si lo
// hay, entra como un movimiento de entrada en la misma transacción: el libro
// nunca recibe cantidades sin su asiento en el diario.
func (uc *ArticleUseCase) Create(ctx context.Context, userID string, in CreateArticleInput) (*entity.Article, error) {
	if in.Name == "" || in.CategoryID == "" || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() || in.InitialQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity.GreaterThan(decimal.Zero) && in.InitialWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	var article *entity.Article
	err = uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		code, err := r.Codes().Next(ctx, codes.KindArticle)
		if err != nil {
			return err
		}
		now := time.Now()
		article = &entity.Article{
			ID:         uuid.New().String(),
			Code:       code,
			Name:       in.Name,
			CategoryID: in.CategoryID,
			Unit:       in.Unit,
			UnitPrice:  in.UnitPrice,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.Articles().Create(ctx, article); err != nil {
			return err
		}
		if in.InitialQuantity.GreaterThan(decimal.Zero) {
			wh, err := r.Warehouses().GetByID(ctx, in.InitialWarehouseID)
			if err != nil {
				return err
			}
			if wh == nil {
				return domain.ErrNotFound
			}
			_, err = uc.recorder.RegisterInTx(ctx, r, inventory.MovementInput{
				UserID:      userID,
				ArticleID:   article.ID,
				WarehouseID: in.InitialWarehouseID,
				Kind:        entity.MovementEntrada,
				Quantity:    in.InitialQuantity,
				Description: "Stock inicial al registrar el artículo",
			})
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}

// UpdateArticleInput cambios de un artículo. Campos nil no se tocan.
type UpdateArticleInput struct {
	Name       *string
	CategoryID *string
	Unit       *string
	UnitPrice  *decimal.Decimal
}

// Update aplica cambios parciales. El código es inmutable; la cantidad no se
// toca por aquí jamás, solo por movimientos.
func (uc *ArticleUseCase) Update(ctx context.Context, id string, in UpdateArticleInput) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		article.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		article.CategoryID = *in.CategoryID
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		article.Unit = *in.Unit
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		article.UnitPrice = *in.UnitPrice
	}
	article.UpdatedAt = time.Now()
	if err := uc.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Get devuelve un artículo por ID.
func (uc *ArticleUseCase) Get(ctx context.Context, id string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

// List lista artículos, opcionalmente filtrados por categoría.
func (uc *ArticleUseCase) List(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Article, error) {
	return uc.articleRepo.List(ctx, categoryID, limit, offset)
}

// StockSummary stock de un artículo desglosado por almacén más el total.
type StockSummary struct {
	Article *entity.Article
	Entries []*entity.Stock
	Total   decimal.Decimal
}

// Stock devuelve el desglose de stock por almacén y el total del artículo,
// que es siempre la suma de las entradas del libro (jamás un campo propio).
func (uc *ArticleUseCase) Stock(ctx context.Context, id string) (*StockSummary, error) {
	article, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := uc.stockRepo.ListByArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	total, err := uc.stockRepo.TotalForArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	return &StockSummary{Article: article, Entries: entries, Total: total}, nil
}

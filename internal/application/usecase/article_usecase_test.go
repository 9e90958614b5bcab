package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcontreras/resort-ops/internal/application/apptest"
	"github.com/dcontreras/resort-ops/internal/application/inventory"
	"github.com/dcontreras/resort-ops/internal/application/usecase"
	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

func newArticleFixture() (*apptest.Store, *usecase.ArticleUseCase) {
	store := apptest.NewStore()
	store.SeedWarehouse(entity.Warehouse{ID: "wh-1", Code: "A001", Name: "Principal", Kind: entity.WarehousePrincipal})
	recorder := inventory.NewMovementUseCase(store, store.Articles(), store.Warehouses(), store.Stock(), store.Movements())
	uc := usecase.NewArticleUseCase(store, store.Articles(), store.Categories(), store.Stock(), recorder)
	return store, uc
}

func seedCategory(store *apptest.Store) {
	cat := entity.Category{ID: "cat-1", Code: "T001", Name: "Bebidas"}
	_ = store.Categories().Create(context.Background(), &cat)
}

func TestArticleCreate_ConStockInicial(t *testing.T) {
	store, uc := newArticleFixture()
	seedCategory(store)

	article, err := uc.Create(context.Background(), "user-1", usecase.CreateArticleInput{
		Name:               "Cerveza",
		CategoryID:         "cat-1",
		Unit:               entity.UnitUnidad,
		UnitPrice:          decimal.RequireFromString("1.50"),
		InitialQuantity:    decimal.NewFromInt(24),
		InitialWarehouseID: "wh-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "A00001", article.Code)

	// El stock inicial entra por el diario, no por asignación directa.
	assert.True(t, store.StockQty(article.ID, "wh-1").Equal(decimal.NewFromInt(24)))
	log := store.MovementLog()
	require.Len(t, log, 1)
	assert.Equal(t, entity.MovementEntrada, log[0].Kind)
	assert.Equal(t, "M000001", log[0].Code)
}

func TestArticleCreate_SinStockInicial(t *testing.T) {
	store, uc := newArticleFixture()
	seedCategory(store)

	article, err := uc.Create(context.Background(), "user-1", usecase.CreateArticleInput{
		Name:       "Vaso desechable",
		CategoryID: "cat-1",
		Unit:       entity.UnitUnidad,
		UnitPrice:  decimal.RequireFromString("0.10"),
	})
	require.NoError(t, err)
	assert.False(t, store.HasStockEntry(article.ID, "wh-1"), "sin stock inicial no nace entrada en el libro")
	assert.Empty(t, store.MovementLog())
}

func TestArticleCreate_Invalido(t *testing.T) {
	store, uc := newArticleFixture()
	seedCategory(store)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", usecase.CreateArticleInput{
		Name: "Sin unidad", CategoryID: "cat-1", Unit: "docena",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "user-1", usecase.CreateArticleInput{
		Name: "Sin almacén", CategoryID: "cat-1", Unit: entity.UnitUnidad,
		InitialQuantity: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial requiere almacén")

	_, err = uc.Create(ctx, "user-1", usecase.CreateArticleInput{
		Name: "Categoría fantasma", CategoryID: "no-existe", Unit: entity.UnitUnidad,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticleStock_TotalEsLaSumaPorAlmacen(t *testing.T) {
	store, uc := newArticleFixture()
	seedCategory(store)
	store.SeedWarehouse(entity.Warehouse{ID: "wh-2", Code: "A002", Name: "Cocina", Kind: entity.WarehouseSecundario})

	article, err := uc.Create(context.Background(), "user-1", usecase.CreateArticleInput{
		Name: "Harina", CategoryID: "cat-1", Unit: entity.UnitKg, UnitPrice: decimal.RequireFromString("0.80"),
	})
	require.NoError(t, err)
	store.SeedStock(article.ID, "wh-1", decimal.RequireFromString("12.5"))
	store.SeedStock(article.ID, "wh-2", decimal.RequireFromString("7.5"))

	summary, err := uc.Stock(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Entries, 2)
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(20)))
}

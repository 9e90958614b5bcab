package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcontreras/resort-ops/internal/application/apptest"
	"github.com/dcontreras/resort-ops/internal/application/inventory"
	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

func newFixture() (*apptest.Store, *inventory.MovementUseCase) {
	store := apptest.NewStore()
	store.SeedArticle(entity.Article{
		ID:        "art-1",
		Code:      "A00001",
		Name:      "Ron añejo",
		Unit:      entity.UnitLitro,
		UnitPrice: decimal.RequireFromString("12.50"),
	})
	store.SeedWarehouse(entity.Warehouse{
		ID:   "wh-1",
		Code: "A001",
		Name: "Almacén Principal",
		Kind: entity.WarehousePrincipal,
	})
	uc := inventory.NewMovementUseCase(store, store.Articles(), store.Warehouses(), store.Stock(), store.Movements())
	return store, uc
}

func TestRegister_EntradaCreaStockPerezoso(t *testing.T) {
	store, uc := newFixture()

	mov, err := uc.Register(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ArticleID:   "art-1",
		WarehouseID: "wh-1",
		Kind:        entity.MovementEntrada,
		Quantity:    decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "M000001", mov.Code)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(10)))
}

func TestRegister_SalidaDescuentaYGuardaNegativo(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(10))

	mov, err := uc.Register(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ArticleID:   "art-1",
		WarehouseID: "wh-1",
		Kind:        entity.MovementSalida,
		Quantity:    decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(-4)), "la salida se guarda como delta negativo")
	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(6)))
}

func TestRegister_SalidaSobregiroNoTocaElLibro(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(3))

	_, err := uc.Register(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ArticleID:   "art-1",
		WarehouseID: "wh-1",
		Kind:        entity.MovementSalida,
		Quantity:    decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(3)), "el rechazo no deja rastro en el libro")
	assert.Empty(t, store.MovementLog(), "el rechazo no deja rastro en el diario")
}

func TestRegister_AjusteSinMotivoFalla(t *testing.T) {
	_, uc := newFixture()

	_, err := uc.Register(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ArticleID:   "art-1",
		WarehouseID: "wh-1",
		Kind:        entity.MovementAjuste,
		Quantity:    decimal.NewFromInt(-2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_AjusteNegativoRespetaElPiso(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(2))

	_, err := uc.Register(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ArticleID:   "art-1",
		WarehouseID: "wh-1",
		Kind:        entity.MovementAjuste,
		Quantity:    decimal.NewFromInt(-5),
		Reason:      "merma por rotura",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(2)))
}

func TestRegister_ArticuloInexistente(t *testing.T) {
	_, uc := newFixture()

	_, err := uc.Register(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ArticleID:   "no-existe",
		WarehouseID: "wh-1",
		Kind:        entity.MovementEntrada,
		Quantity:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_ElLibroEsLaSumaDeLosDeltas(t *testing.T) {
	store, uc := newFixture()
	ctx := context.Background()

	inputs := []inventory.MovementInput{
		{Kind: entity.MovementEntrada, Quantity: decimal.NewFromInt(20)},
		{Kind: entity.MovementSalida, Quantity: decimal.NewFromInt(7)},
		{Kind: entity.MovementAjuste, Quantity: decimal.NewFromInt(-3), Reason: "conteo físico"},
		{Kind: entity.MovementEntrada, Quantity: decimal.RequireFromString("2.5")},
	}
	for _, in := range inputs {
		in.UserID = "user-1"
		in.ArticleID = "art-1"
		in.WarehouseID = "wh-1"
		_, err := uc.Register(ctx, in)
		require.NoError(t, err)
	}

	sum := decimal.Zero
	for _, m := range store.MovementLog() {
		sum = sum.Add(m.Quantity)
	}
	assert.True(t, sum.Equal(store.StockQty("art-1", "wh-1")), "libro %s vs suma %s", store.StockQty("art-1", "wh-1"), sum)
	assert.True(t, sum.Equal(decimal.RequireFromString("12.5")))
}

func TestRegister_CodigosMonotonicos(t *testing.T) {
	store, uc := newFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.Register(ctx, inventory.MovementInput{
			UserID:      "user-1",
			ArticleID:   "art-1",
			WarehouseID: "wh-1",
			Kind:        entity.MovementEntrada,
			Quantity:    decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}
	log := store.MovementLog()
	require.Len(t, log, 3)
	assert.Equal(t, "M000001", log[0].Code)
	assert.Equal(t, "M000002", log[1].Code)
	assert.Equal(t, "M000003", log[2].Code)
}

func TestLookupStock(t *testing.T) {
	store, uc := newFixture()
	ctx := context.Background()

	info, err := uc.LookupStock(ctx, "art-1", "wh-1")
	require.NoError(t, err)
	assert.True(t, info.Quantity.IsZero(), "par jamás surtido responde cero, no error")
	assert.Empty(t, info.UnitLabel)

	store.SeedStock("art-1", "wh-1", decimal.RequireFromString("7.25"))
	info, err = uc.LookupStock(ctx, "art-1", "wh-1")
	require.NoError(t, err)
	assert.True(t, info.Quantity.Equal(decimal.RequireFromString("7.25")))
	assert.Equal(t, "Litro", info.UnitLabel)
}

package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcontreras/resort-ops/internal/application/apptest"
	"github.com/dcontreras/resort-ops/internal/application/inventory"
	"github.com/dcontreras/resort-ops/internal/application/orders"
	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

type fakeReceipts struct{}

func (fakeReceipts) Generate(_ *entity.Order, _ string, _ []orders.ReceiptLine) ([]byte, error) {
	return []byte("%PDF"), nil
}

func newFixture() (*apptest.Store, *orders.OrderUseCase) {
	store := apptest.NewStore()
	store.SeedLocation(entity.Location{ID: "villa-1", Kind: entity.LocationVilla, Code: "V-12"})
	store.SeedLocation(entity.Location{ID: "mesa-1", Kind: entity.LocationMesa, Code: "M-03"})
	store.SeedCustomer(entity.Customer{
		ID:                 "cust-1",
		Code:               "C000001",
		Name:               "Ana Pérez",
		IdentificationKind: entity.IdentificationVenezolano,
		Document:           "V-12345678",
		Kind:               entity.CustomerHuesped,
		VillaID:            "villa-1",
		MesaID:             "mesa-1",
	})
	store.SeedArticle(entity.Article{
		ID:        "art-1",
		Code:      "A00001",
		Name:      "Agua mineral",
		Unit:      entity.UnitUnidad,
		UnitPrice: decimal.RequireFromString("2.50"),
	})
	store.SeedWarehouse(entity.Warehouse{ID: "wh-1", Code: "A001", Name: "Bar", Kind: entity.WarehousePrincipal})
	store.SeedWarehouse(entity.Warehouse{ID: "wh-2", Code: "A002", Name: "Cocina", Kind: entity.WarehouseSecundario})

	recorder := inventory.NewMovementUseCase(store, store.Articles(), store.Warehouses(), store.Stock(), store.Movements())
	uc := orders.NewOrderUseCase(store, store.Customers(), store.Locations(), store.Articles(), store.Orders(), recorder, fakeReceipts{})
	return store, uc
}

func mustCreate(t *testing.T, uc *orders.OrderUseCase, in orders.CreateOrderInput) *entity.Order {
	t.Helper()
	if in.CustomerID == "" {
		in.CustomerID = "cust-1"
	}
	order, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)
	return order
}

func TestCreate_CongelaLaFotoDelCliente(t *testing.T) {
	store, uc := newFixture()
	ctx := context.Background()

	order := mustCreate(t, uc, orders.CreateOrderInput{})
	assert.Equal(t, "OS000001", order.Code)
	assert.Equal(t, entity.OrderAbierta, order.Status)
	assert.Equal(t, "V-12345678", order.CustomerDocument)
	assert.Equal(t, "V-12", order.VillaCode)
	assert.Equal(t, "M-03", order.MesaCode)

	// Editar el cliente después no altera la foto.
	customer, err := store.Customers().GetByID(ctx, "cust-1")
	require.NoError(t, err)
	customer.Document = "V-99999999"
	require.NoError(t, store.Customers().Update(ctx, customer))

	persisted, ok := store.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, "V-12345678", persisted.CustomerDocument)
}

func TestCreate_ClienteInexistente(t *testing.T) {
	_, uc := newFixture()
	_, err := uc.Create(context.Background(), "user-1", orders.CreateOrderInput{CustomerID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_SurteYDescuentaEnLaMismaTransaccion(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(10))
	order := mustCreate(t, uc, orders.CreateOrderInput{})

	item, err := uc.AddItem(context.Background(), "user-1", entity.RoleMesonero, order.ID, orders.ItemInput{
		ArticleID:   "art-1",
		WarehouseID: "wh-1",
		Quantity:    4,
	})
	require.NoError(t, err)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("2.50")), "sin precio explícito toma el de catálogo")

	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(6)))
	persisted, _ := store.Order(order.ID)
	assert.True(t, persisted.NetTotal.Equal(decimal.RequireFromString("10.00")), "neto %s", persisted.NetTotal)

	log := store.MovementLog()
	require.Len(t, log, 1)
	assert.Equal(t, entity.MovementSalida, log[0].Kind)
	assert.Equal(t, order.ID, log[0].OrderID)
	assert.True(t, log[0].Quantity.Equal(decimal.NewFromInt(-4)))
}

func TestAddItem_SinStockSuficienteNoDejaRastro(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(10))
	order := mustCreate(t, uc, orders.CreateOrderInput{})
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "user-1", entity.RoleMesonero, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-1", Quantity: 4,
	})
	require.NoError(t, err)

	_, err = uc.AddItem(ctx, "user-1", entity.RoleMesonero, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-1", Quantity: 7,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La línea rechazada no existe, el libro sigue en 6 y los totales no se movieron.
	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(6)))
	_, items, err := uc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	persisted, _ := store.Order(order.ID)
	assert.True(t, persisted.NetTotal.Equal(decimal.RequireFromString("10.00")))
	assert.Len(t, store.MovementLog(), 1)
}

func TestAddItem_ParJamasSurtido(t *testing.T) {
	_, uc := newFixture()
	order := mustCreate(t, uc, orders.CreateOrderInput{})

	_, err := uc.AddItem(context.Background(), "user-1", entity.RoleMesonero, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-2", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNoStockRecord, "sin entrada en el libro la venta se rechaza, no nace en cero")
}

func TestUpdateItem_DeltaSobreElMismoPar(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(10))
	order := mustCreate(t, uc, orders.CreateOrderInput{})
	ctx := context.Background()

	item, err := uc.AddItem(ctx, "user-1", entity.RoleMesonero, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-1", Quantity: 4,
	})
	require.NoError(t, err)

	// 4 -> 6: salida adicional por el delta 2.
	_, err = uc.UpdateItem(ctx, "user-1", entity.RoleMesonero, order.ID, item.ID, orders.ItemInput{Quantity: 6})
	require.NoError(t, err)
	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(4)))

	// 6 -> 1: devolución por el delta 5.
	_, err = uc.UpdateItem(ctx, "user-1", entity.RoleMesonero, order.ID, item.ID, orders.ItemInput{Quantity: 1})
	require.NoError(t, err)
	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(9)))

	persisted, _ := store.Order(order.ID)
	assert.True(t, persisted.NetTotal.Equal(decimal.RequireFromString("2.50")))

	log := store.MovementLog()
	require.Len(t, log, 3)
	assert.Equal(t, entity.MovementSalida, log[1].Kind)
	assert.Equal(t, entity.MovementEntrada, log[2].Kind)
}

func TestUpdateItem_CambioDeAlmacen(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(10))
	store.SeedStock("art-1", "wh-2", decimal.NewFromInt(5))
	order := mustCreate(t, uc, orders.CreateOrderInput{})
	ctx := context.Background()

	item, err := uc.AddItem(ctx, "user-1", entity.RoleMesonero, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-1", Quantity: 4,
	})
	require.NoError(t, err)

	// Mover la línea al otro almacén devuelve todo al primero y surte del segundo.
	_, err = uc.UpdateItem(ctx, "user-1", entity.RoleMesonero, order.ID, item.ID, orders.ItemInput{
		WarehouseID: "wh-2",
		Quantity:    3,
	})
	require.NoError(t, err)
	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(10)))
	assert.True(t, store.StockQty("art-1", "wh-2").Equal(decimal.NewFromInt(2)))
}

func TestRemoveItem_DevuelveYResuma(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(10))
	order := mustCreate(t, uc, orders.CreateOrderInput{})
	ctx := context.Background()

	item, err := uc.AddItem(ctx, "user-1", entity.RoleMesonero, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-1", Quantity: 4,
	})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveItem(ctx, "user-1", entity.RoleMesonero, order.ID, item.ID))
	assert.True(t, store.StockQty("art-1", "wh-1").Equal(decimal.NewFromInt(10)))

	persisted, _ := store.Order(order.ID)
	assert.True(t, persisted.NetTotal.IsZero())
	assert.True(t, persisted.FinalTotal.IsZero())

	_, items, err := uc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTotales_ConPorcentajes(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(100))
	order := mustCreate(t, uc, orders.CreateOrderInput{
		ServicePct:  decimal.NewFromInt(10),
		TaxPct:      decimal.NewFromInt(16),
		DiscountPct: decimal.NewFromInt(5),
	})

	// 40 × 2.50 = 100.00 neto; 100 + 10 + 16 - 5 = 121.00 final.
	_, err := uc.AddItem(context.Background(), "user-1", entity.RoleMesonero, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-1", Quantity: 40,
	})
	require.NoError(t, err)

	persisted, _ := store.Order(order.ID)
	assert.True(t, persisted.NetTotal.Equal(decimal.RequireFromString("100.00")), "neto %s", persisted.NetTotal)
	assert.True(t, persisted.FinalTotal.Equal(decimal.RequireFromString("121.00")), "final %s", persisted.FinalTotal)
}

func TestUpdate_TransicionesYFechaDeCierre(t *testing.T) {
	_, uc := newFixture()
	order := mustCreate(t, uc, orders.CreateOrderInput{})
	ctx := context.Background()

	cerrada := entity.OrderCerrada
	updated, err := uc.Update(ctx, entity.RoleMesonero, order.ID, orders.UpdateOrderInput{Status: &cerrada})
	require.NoError(t, err)
	require.NotNil(t, updated.ClosedAt)
	closedAt := *updated.ClosedAt

	// Re-guardar cerrada no re-estampa.
	updated, err = uc.Update(ctx, entity.RoleMesonero, order.ID, orders.UpdateOrderInput{Status: &cerrada})
	require.NoError(t, err)
	require.NotNil(t, updated.ClosedAt)
	assert.True(t, updated.ClosedAt.Equal(closedAt))

	// Reabrir limpia la fecha.
	abierta := entity.OrderAbierta
	updated, err = uc.Update(ctx, entity.RoleMesonero, order.ID, orders.UpdateOrderInput{Status: &abierta})
	require.NoError(t, err)
	assert.Nil(t, updated.ClosedAt)

	// abierta -> facturada no es transición válida.
	facturada := entity.OrderFacturada
	_, err = uc.Update(ctx, entity.RoleMesonero, order.ID, orders.UpdateOrderInput{Status: &facturada})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdate_PorcentajesSoloConOrdenAbierta(t *testing.T) {
	_, uc := newFixture()
	order := mustCreate(t, uc, orders.CreateOrderInput{})
	ctx := context.Background()

	cerrada := entity.OrderCerrada
	_, err := uc.Update(ctx, entity.RoleMesonero, order.ID, orders.UpdateOrderInput{Status: &cerrada})
	require.NoError(t, err)

	pct := decimal.NewFromInt(10)
	_, err = uc.Update(ctx, entity.RoleMesonero, order.ID, orders.UpdateOrderInput{ServicePct: &pct})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFacturada_CandadoPorRol(t *testing.T) {
	store, uc := newFixture()
	store.SeedStock("art-1", "wh-1", decimal.NewFromInt(10))
	order := mustCreate(t, uc, orders.CreateOrderInput{})
	ctx := context.Background()

	cerrada, facturada := entity.OrderCerrada, entity.OrderFacturada
	_, err := uc.Update(ctx, entity.RoleMesonero, order.ID, orders.UpdateOrderInput{Status: &cerrada})
	require.NoError(t, err)
	_, err = uc.Update(ctx, entity.RoleCajero, order.ID, orders.UpdateOrderInput{Status: &facturada})
	require.NoError(t, err)

	// El mesonero ya no puede tocar la orden; el supervisor sí.
	_, err = uc.AddItem(ctx, "user-1", entity.RoleMesonero, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.AddItem(ctx, "user-2", entity.RoleSupervisor, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-1", Quantity: 1,
	})
	assert.NoError(t, err)
}

func TestAnulada_RechazaLineas(t *testing.T) {
	_, uc := newFixture()
	order := mustCreate(t, uc, orders.CreateOrderInput{})
	ctx := context.Background()

	anulada := entity.OrderAnulada
	_, err := uc.Update(ctx, entity.RoleMesonero, order.ID, orders.UpdateOrderInput{Status: &anulada})
	require.NoError(t, err)

	_, err = uc.AddItem(ctx, "user-1", entity.RoleAdmin, order.ID, orders.ItemInput{
		ArticleID: "art-1", WarehouseID: "wh-1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReceipt_SoloCerradaOFacturada(t *testing.T) {
	_, uc := newFixture()
	order := mustCreate(t, uc, orders.CreateOrderInput{})
	ctx := context.Background()

	_, err := uc.Receipt(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "una orden abierta todavía cambia")

	cerrada := entity.OrderCerrada
	_, err = uc.Update(ctx, entity.RoleMesonero, order.ID, orders.UpdateOrderInput{Status: &cerrada})
	require.NoError(t, err)

	pdf, err := uc.Receipt(ctx, order.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

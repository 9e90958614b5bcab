package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

func item(qty int, price string) *entity.OrderItem {
	return &entity.OrderItem{Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

func TestRecomputeTotals_EscenarioReferencia(t *testing.T) {
	// net=100, servicio 10%, impuesto 16%, descuento 5% -> 100+10+16-5 = 121.00
	o := &entity.Order{
		ServicePct:  decimal.NewFromInt(10),
		TaxPct:      decimal.NewFromInt(16),
		DiscountPct: decimal.NewFromInt(5),
	}
	items := []*entity.OrderItem{item(4, "25.00")}

	o.RecomputeTotals(items)

	assert.True(t, o.NetTotal.Equal(decimal.RequireFromString("100.00")), "neto: %s", o.NetTotal)
	assert.True(t, o.FinalTotal.Equal(decimal.RequireFromString("121.00")), "final: %s", o.FinalTotal)
}

func TestRecomputeTotals_Idempotente(t *testing.T) {
	o := &entity.Order{ServicePct: decimal.NewFromInt(10)}
	items := []*entity.OrderItem{item(4, "2.50"), item(2, "3.75")}

	o.RecomputeTotals(items)
	net1, final1 := o.NetTotal, o.FinalTotal
	o.RecomputeTotals(items)

	assert.True(t, o.NetTotal.Equal(net1))
	assert.True(t, o.FinalTotal.Equal(final1))
}

// Borrar una línea reduce el neto exactamente en su subtotal, verificado
// re-sumando desde cero y no restando.
func TestRecomputeTotals_BorrarLinea(t *testing.T) {
	o := &entity.Order{}
	a, b := item(4, "2.50"), item(3, "7.00")

	o.RecomputeTotals([]*entity.OrderItem{a, b})
	conAmbas := o.NetTotal

	o.RecomputeTotals([]*entity.OrderItem{a})
	assert.True(t, o.NetTotal.Equal(conAmbas.Sub(b.Subtotal())),
		"el neto debe bajar exactamente el subtotal de la línea borrada")
	assert.True(t, o.NetTotal.Equal(decimal.RequireFromString("10.00")))
}

func TestRecomputeTotals_SinLineas(t *testing.T) {
	o := &entity.Order{ServicePct: decimal.NewFromInt(10)}
	o.RecomputeTotals(nil)
	assert.True(t, o.NetTotal.IsZero())
	assert.True(t, o.FinalTotal.IsZero())
}

func TestApplyStatus_FechaDeCierre(t *testing.T) {
	o := &entity.Order{Status: entity.OrderAbierta}
	t1 := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	// Cerrar estampa la fecha una sola vez.
	o.ApplyStatus(entity.OrderCerrada, t1)
	require.NotNil(t, o.ClosedAt)
	assert.Equal(t, t1, *o.ClosedAt)

	// Re-guardar cerrada no re-estampa.
	o.ApplyStatus(entity.OrderCerrada, t2)
	assert.Equal(t, t1, *o.ClosedAt)

	// Reabrir limpia la fecha.
	o.ApplyStatus(entity.OrderAbierta, t2)
	assert.Nil(t, o.ClosedAt)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.OrderAbierta, entity.OrderCerrada, true},
		{entity.OrderAbierta, entity.OrderAnulada, true},
		{entity.OrderAbierta, entity.OrderFacturada, false},
		{entity.OrderCerrada, entity.OrderFacturada, true},
		{entity.OrderCerrada, entity.OrderAbierta, true},
		{entity.OrderCerrada, entity.OrderAnulada, true},
		{entity.OrderFacturada, entity.OrderAbierta, false},
		{entity.OrderFacturada, entity.OrderAnulada, false},
		{entity.OrderAnulada, entity.OrderAbierta, false},
		{entity.OrderCerrada, entity.OrderCerrada, true}, // idempotente
	}
	for _, c := range cases {
		o := &entity.Order{Status: c.from}
		assert.Equal(t, c.want, o.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestIsMutable_OrdenFacturada(t *testing.T) {
	o := &entity.Order{Status: entity.OrderFacturada}
	assert.False(t, o.IsMutable(entity.RoleMesonero))
	assert.False(t, o.IsMutable(entity.RoleCajero))
	assert.True(t, o.IsMutable(entity.RoleSupervisor))
	assert.True(t, o.IsMutable(entity.RoleAdmin))

	abierta := &entity.Order{Status: entity.OrderAbierta}
	assert.True(t, abierta.IsMutable(entity.RoleMesonero))
}

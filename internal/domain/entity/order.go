package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de servicio.
const (
	OrderAbierta   = "abierta"
	OrderCerrada   = "cerrada"
	OrderFacturada = "facturada"
	OrderAnulada   = "anulada"
)

// validTransitions transiciones permitidas del estado de la orden.
// abierta -> cerrada -> facturada; anulada alcanzable desde abierta/cerrada.
// Se permite reabrir una orden cerrada (cerrada -> abierta), lo que limpia
// la fecha de cierre.
var validTransitions = map[string][]string{
	OrderAbierta:   {OrderCerrada, OrderAnulada},
	OrderCerrada:   {OrderAbierta, OrderFacturada, OrderAnulada},
	OrderFacturada: {},
	OrderAnulada:   {},
}

// Order representa una orden de servicio con sus totales derivados.
// CustomerDocument, VillaCode y MesaCode son una foto congelada del cliente
// al momento de crear la orden: cambios posteriores al cliente no la alteran.
type Order struct {
	ID               string
	Code             string // código generado OS000001
	UserID           string
	CustomerID       string
	CustomerDocument string
	VillaCode        string
	MesaCode         string
	Status           string
	ServicePct       decimal.Decimal
	TaxPct           decimal.Decimal
	DiscountPct      decimal.Decimal
	NetTotal         decimal.Decimal
	FinalTotal       decimal.Decimal
	CreatedAt        time.Time  // inmutable
	ClosedAt         *time.Time // se estampa al cerrar; se limpia al salir de cerrada
}

// ValidOrderStatus valida el estado.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderAbierta, OrderCerrada, OrderFacturada, OrderAnulada:
		return true
	}
	return false
}

// CanTransition indica si la orden puede pasar del estado actual a target.
func (o *Order) CanTransition(target string) bool {
	if o.Status == target {
		return true // re-guardar en el mismo estado es idempotente
	}
	for _, s := range validTransitions[o.Status] {
		if s == target {
			return true
		}
	}
	return false
}

// ApplyStatus cambia el estado y mantiene la fecha de cierre: se estampa una
// sola vez al entrar en cerrada (re-guardar cerrada no la re-estampa) y se
// limpia en cualquier transición que salga de cerrada.
func (o *Order) ApplyStatus(target string, now time.Time) {
	o.Status = target
	if target == OrderCerrada {
		if o.ClosedAt == nil {
			t := now
			o.ClosedAt = &t
		}
		return
	}
	o.ClosedAt = nil
}

// IsMutable indica si el estado admite cambios sin rol elevado.
// Una orden facturada solo la modifica un supervisor o administrador.
func (o *Order) IsMutable(role string) bool {
	if o.Status == OrderFacturada {
		return IsElevatedRole(role)
	}
	return true
}

// RecomputeTotals re-suma los totales desde el conjunto vivo de líneas.
// Nunca es incremental: siempre re-suma para evitar deriva acumulada.
// No toca los porcentajes; esos los fija el solicitante.
func (o *Order) RecomputeTotals(items []*OrderItem) {
	net := decimal.Zero
	for _, it := range items {
		net = net.Add(it.Subtotal())
	}
	hundred := decimal.NewFromInt(100)
	service := net.Mul(o.ServicePct).Div(hundred)
	tax := net.Mul(o.TaxPct).Div(hundred)
	discount := net.Mul(o.DiscountPct).Div(hundred)

	o.NetTotal = net
	o.FinalTotal = net.Add(service).Add(tax).Sub(discount)
}

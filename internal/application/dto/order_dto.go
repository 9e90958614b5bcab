package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CustomerID  string          `json:"customer_id"`
	ServicePct  decimal.Decimal `json:"service_pct,omitempty"`
	TaxPct      decimal.Decimal `json:"tax_pct,omitempty"`
	DiscountPct decimal.Decimal `json:"discount_pct,omitempty"`
}

// UpdateOrderRequest cambios de cabecera: estado y/o porcentajes. Los
// porcentajes solo se aceptan mientras la orden está abierta.
type UpdateOrderRequest struct {
	Status      *string          `json:"status,omitempty"` // abierta|cerrada|facturada|anulada
	ServicePct  *decimal.Decimal `json:"service_pct,omitempty"`
	TaxPct      *decimal.Decimal `json:"tax_pct,omitempty"`
	DiscountPct *decimal.Decimal `json:"discount_pct,omitempty"`
}

// OrderItemRequest body para agregar o editar una línea. unit_price en cero
// toma el precio de catálogo del artículo.
type OrderItemRequest struct {
	ArticleID   string          `json:"article_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price,omitempty"`
}

// OrderItemResponse línea en respuestas con su subtotal derivado.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ArticleID   string          `json:"article_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ToOrderItemResponse mapea la línea a su respuesta HTTP.
func ToOrderItemResponse(i *entity.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:          i.ID,
		ArticleID:   i.ArticleID,
		WarehouseID: i.WarehouseID,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		Subtotal:    i.Subtotal(),
	}
}

// OrderResponse orden en respuestas. customer_document, villa_code y
// mesa_code son la foto congelada al crear la orden.
type OrderResponse struct {
	ID               string              `json:"id"`
	Code             string              `json:"code"`
	UserID           string              `json:"user_id"`
	CustomerID       string              `json:"customer_id"`
	CustomerDocument string              `json:"customer_document"`
	VillaCode        string              `json:"villa_code,omitempty"`
	MesaCode         string              `json:"mesa_code,omitempty"`
	Status           string              `json:"status"`
	ServicePct       decimal.Decimal     `json:"service_pct"`
	TaxPct           decimal.Decimal     `json:"tax_pct"`
	DiscountPct      decimal.Decimal     `json:"discount_pct"`
	NetTotal         decimal.Decimal     `json:"net_total"`
	FinalTotal       decimal.Decimal     `json:"final_total"`
	CreatedAt        time.Time           `json:"created_at"`
	ClosedAt         *time.Time          `json:"closed_at,omitempty"`
	Items            []OrderItemResponse `json:"items,omitempty"`
}

// ToOrderResponse mapea la orden (y sus líneas, si se pasan) a su respuesta HTTP.
func ToOrderResponse(o *entity.Order, items []*entity.OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:               o.ID,
		Code:             o.Code,
		UserID:           o.UserID,
		CustomerID:       o.CustomerID,
		CustomerDocument: o.CustomerDocument,
		VillaCode:        o.VillaCode,
		MesaCode:         o.MesaCode,
		Status:           o.Status,
		ServicePct:       o.ServicePct,
		TaxPct:           o.TaxPct,
		DiscountPct:      o.DiscountPct,
		NetTotal:         o.NetTotal,
		FinalTotal:       o.FinalTotal,
		CreatedAt:        o.CreatedAt,
		ClosedAt:         o.ClosedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, ToOrderItemResponse(it))
	}
	return resp
}

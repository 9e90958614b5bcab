package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// CreateArticleRequest body para POST /api/articles. Si initial_quantity es
// positivo, initial_warehouse_id indica dónde nace el stock inicial (entra
// como movimiento de entrada, no como asignación directa).
type CreateArticleRequest struct {
	Name               string          `json:"name"`
	CategoryID         string          `json:"category_id"`
	Unit               string          `json:"unit"` // unidad|kg|litro|metro|centimetro|gramo|mililitro
	UnitPrice          decimal.Decimal `json:"unit_price"`
	InitialQuantity    decimal.Decimal `json:"initial_quantity,omitempty"`
	InitialWarehouseID string          `json:"initial_warehouse_id,omitempty"`
}

// UpdateArticleRequest cambios parciales de un artículo. La cantidad no se
// puede tocar por aquí: solo por movimientos.
type UpdateArticleRequest struct {
	Name       *string          `json:"name,omitempty"`
	CategoryID *string          `json:"category_id,omitempty"`
	Unit       *string          `json:"unit,omitempty"`
	UnitPrice  *decimal.Decimal `json:"unit_price,omitempty"`
}

// ArticleResponse artículo en respuestas.
type ArticleResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToArticleResponse mapea la entidad a su respuesta HTTP.
func ToArticleResponse(a *entity.Article) ArticleResponse {
	return ArticleResponse{
		ID:         a.ID,
		Code:       a.Code,
		Name:       a.Name,
		CategoryID: a.CategoryID,
		Unit:       a.Unit,
		UnitPrice:  a.UnitPrice,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// StockEntryResponse entrada del libro de stock por almacén.
type StockEntryResponse struct {
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ArticleStockResponse desglose de stock de un artículo más el total.
type ArticleStockResponse struct {
	Article ArticleResponse      `json:"article"`
	Entries []StockEntryResponse `json:"entries"`
	Total   decimal.Decimal      `json:"total"`
}

// CreateMovementRequest body para POST /api/movements. Quantity es magnitud
// positiva para entrada/salida; para ajuste es el delta firmado y reason es
// obligatorio.
type CreateMovementRequest struct {
	ArticleID   string          `json:"article_id"`
	WarehouseID string          `json:"warehouse_id"`
	Kind        string          `json:"kind"` // entrada|salida|ajuste
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason,omitempty"`
	Description string          `json:"description,omitempty"`
}

// MovementResponse movimiento confirmado en respuestas. Quantity es el delta
// firmado aplicado al libro.
type MovementResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	ArticleID   string          `json:"article_id"`
	WarehouseID string          `json:"warehouse_id"`
	Kind        string          `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	OrderID     string          `json:"order_id,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	CreatedBy   string          `json:"created_by"`
}

// ToMovementResponse mapea la entidad a su respuesta HTTP.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		Code:        m.Code,
		ArticleID:   m.ArticleID,
		WarehouseID: m.WarehouseID,
		Kind:        m.Kind,
		Quantity:    m.Quantity,
		OrderID:     m.OrderID,
		Reason:      m.Reason,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// StockLookupResponse respuesta de GET /api/stock para prellenado de
// formularios: cantidad disponible y etiqueta de unidad del par consultado.
type StockLookupResponse struct {
	Quantity  decimal.Decimal `json:"quantity"`
	UnitLabel string          `json:"unit_label,omitempty"`
}

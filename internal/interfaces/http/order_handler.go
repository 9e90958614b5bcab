package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcontreras/resort-ops/internal/application/dto"
	"github.com/dcontreras/resort-ops/internal/application/orders"
)

// OrderHandler maneja las órdenes de servicio y sus líneas (protegido).
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir orden de servicio
// @Description  Abre una orden para un cliente, congelando documento y códigos de villa/mesa al momento de la creación.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "datos de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(c.Context(), GetUserID(c), orders.CreateOrderInput{
		CustomerID:  in.CustomerID,
		ServicePct:  in.ServicePct,
		TaxPct:      in.TaxPct,
		DiscountPct: in.DiscountPct,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToOrderResponse(order, nil))
}

// GetByID consulta una orden con sus líneas.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, items, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrderResponse(order, items))
}

// List lista órdenes; ?status= filtra por estado.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.ToOrderResponse(o, nil))
	}
	return c.JSON(out)
}

// Update cambia estado y/o porcentajes de la cabecera. Una orden facturada
// solo la tocan roles elevados.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Update(c.Context(), GetRole(c), c.Params("id"), orders.UpdateOrderInput{
		Status:      in.Status,
		ServicePct:  in.ServicePct,
		TaxPct:      in.TaxPct,
		DiscountPct: in.DiscountPct,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrderResponse(order, nil))
}

// AddItem agrega una línea: surte la salida de inventario y re-suma totales
// en la misma transacción.
func (h *OrderHandler) AddItem(c *fiber.Ctx) error {
	var in dto.OrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AddItem(c.Context(), GetUserID(c), GetRole(c), c.Params("id"), orders.ItemInput{
		ArticleID:   in.ArticleID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToOrderItemResponse(item))
}

// UpdateItem edita una línea. Mismo par: movimiento por el delta; cambio de
// par: devolución completa al par viejo y salida completa del nuevo.
func (h *OrderHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.OrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.UpdateItem(c.Context(), GetUserID(c), GetRole(c), c.Params("id"), c.Params("itemId"), orders.ItemInput{
		ArticleID:   in.ArticleID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrderItemResponse(item))
}

// RemoveItem elimina una línea devolviendo su cantidad completa al stock.
func (h *OrderHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.Context(), GetUserID(c), GetRole(c), c.Params("id"), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Recibo PDF de la orden
// @Description  Genera el recibo. Solo órdenes cerradas o facturadas tienen recibo.
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdf, err := h.uc.Receipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(pdf)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcontreras/resort-ops/internal/application/dto"
	"github.com/dcontreras/resort-ops/internal/application/usecase"
)

// CustomerHandler maneja las peticiones de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "huésped requiere villa y mesa; visitante no lleva villa"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(c.Context(), usecase.CreateCustomerInput{
		Name:               in.Name,
		IdentificationKind: in.IdentificationKind,
		Document:           in.Document,
		Address:            in.Address,
		Phone:              in.Phone,
		Kind:               in.Kind,
		VillaID:            in.VillaID,
		MesaID:             in.MesaID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCustomerResponse(customer))
}

// GetByID consulta un cliente.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCustomerResponse(customer))
}

// List lista clientes paginados.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	customers, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, cu := range customers {
		out = append(out, dto.ToCustomerResponse(cu))
	}
	return c.JSON(out)
}

// Update edita un cliente re-validando las reglas de villa/mesa.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Update(c.Context(), c.Params("id"), usecase.UpdateCustomerInput{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Kind:    in.Kind,
		VillaID: in.VillaID,
		MesaID:  in.MesaID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCustomerResponse(customer))
}

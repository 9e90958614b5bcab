package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcontreras/resort-ops/internal/application/dto"
	"github.com/dcontreras/resort-ops/internal/application/usecase"
)

// ArticleHandler maneja las peticiones de artículos (protegido).
type ArticleHandler struct {
	uc *usecase.ArticleUseCase
}

// NewArticleHandler construye el handler.
func NewArticleHandler(uc *usecase.ArticleUseCase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar artículo
// @Description  Crea un artículo con código generado. Si initial_quantity es positivo, el stock inicial entra como movimiento de entrada en la misma transacción.
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleRequest  true  "datos del artículo"
// @Success      201   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	article, err := h.uc.Create(c.Context(), GetUserID(c), usecase.CreateArticleInput{
		Name:               in.Name,
		CategoryID:         in.CategoryID,
		Unit:               in.Unit,
		UnitPrice:          in.UnitPrice,
		InitialQuantity:    in.InitialQuantity,
		InitialWarehouseID: in.InitialWarehouseID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToArticleResponse(article))
}

// GetByID consulta un artículo.
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	article, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToArticleResponse(article))
}

// List lista artículos; ?category_id= filtra por categoría.
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	articles, err := h.uc.List(c.Context(), c.Query("category_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, dto.ToArticleResponse(a))
	}
	return c.JSON(out)
}

// Update edita un artículo. El código es inmutable y la cantidad solo se
// mueve por movimientos.
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	article, err := h.uc.Update(c.Context(), c.Params("id"), usecase.UpdateArticleInput{
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Unit:       in.Unit,
		UnitPrice:  in.UnitPrice,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToArticleResponse(article))
}

// Stock devuelve el desglose de stock del artículo por almacén más el total.
func (h *ArticleHandler) Stock(c *fiber.Ctx) error {
	summary, err := h.uc.Stock(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.ArticleStockResponse{
		Article: dto.ToArticleResponse(summary.Article),
		Entries: make([]dto.StockEntryResponse, 0, len(summary.Entries)),
		Total:   summary.Total,
	}
	for _, e := range summary.Entries {
		resp.Entries = append(resp.Entries, dto.StockEntryResponse{
			WarehouseID: e.WarehouseID,
			Quantity:    e.Quantity,
		})
	}
	return c.JSON(resp)
}

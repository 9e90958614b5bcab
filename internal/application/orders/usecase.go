package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dcontreras/resort-ops/internal/application/inventory"
	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/codes"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

// OrderUseCase gestiona las órdenes de servicio: creación con foto congelada
// del cliente, líneas con surtido sincrónico de inventario y máquina de
// estados con candado para órdenes facturadas.
//
// Cada mutación de línea descuenta (o devuelve) stock registrando un
// movimiento dentro de la misma transacción que persiste la línea: no hay
// observadores implícitos ni un paso de "cumplir la orden" aparte, de modo
// que la línea confirmada y el stock descontado son inseparables.
type OrderUseCase struct {
	tx           repository.TxRunner
	customerRepo repository.CustomerRepository
	locationRepo repository.LocationRepository
	articleRepo  repository.ArticleRepository
	orderRepo    repository.OrderRepository
	recorder     MovementRecorder
	receipts     ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	tx repository.TxRunner,
	customerRepo repository.CustomerRepository,
	locationRepo repository.LocationRepository,
	articleRepo repository.ArticleRepository,
	orderRepo repository.OrderRepository,
	recorder MovementRecorder,
	receipts ReceiptGenerator,
) *OrderUseCase {
	return &OrderUseCase{
		tx:           tx,
		customerRepo: customerRepo,
		locationRepo: locationRepo,
		articleRepo:  articleRepo,
		orderRepo:    orderRepo,
		recorder:     recorder,
		receipts:     receipts,
	}
}

// CreateOrderInput datos para abrir una orden de servicio.
type CreateOrderInput struct {
	CustomerID  string
	ServicePct  decimal.Decimal
	TaxPct      decimal.Decimal
	DiscountPct decimal.Decimal
}

// Create abre una orden para un cliente, congelando su documento y los
// códigos de villa/mesa al momento de la creación. Ediciones posteriores del
// cliente no alteran la foto.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in CreateOrderInput) (*entity.Order, error) {
	if in.CustomerID == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ServicePct.IsNegative() || in.TaxPct.IsNegative() || in.DiscountPct.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	villaCode, err := uc.locationCode(ctx, customer.VillaID)
	if err != nil {
		return nil, err
	}
	mesaCode, err := uc.locationCode(ctx, customer.MesaID)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	err = uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		code, err := r.Codes().Next(ctx, codes.KindOrder)
		if err != nil {
			return err
		}
		order = &entity.Order{
			ID:               uuid.New().String(),
			Code:             code,
			UserID:           userID,
			CustomerID:       customer.ID,
			CustomerDocument: customer.Document,
			VillaCode:        villaCode,
			MesaCode:         mesaCode,
			Status:           entity.OrderAbierta,
			ServicePct:       in.ServicePct,
			TaxPct:           in.TaxPct,
			DiscountPct:      in.DiscountPct,
			NetTotal:         decimal.Zero,
			FinalTotal:       decimal.Zero,
			CreatedAt:        time.Now(),
		}
		return r.Orders().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (uc *OrderUseCase) locationCode(ctx context.Context, locationID string) (string, error) {
	if locationID == "" {
		return "", nil
	}
	loc, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return "", err
	}
	if loc == nil {
		return "", nil
	}
	return loc.Code, nil
}

// ItemInput datos de una línea. UnitPrice en cero toma el precio de catálogo
// del artículo al momento de la venta.
type ItemInput struct {
	ArticleID   string
	WarehouseID string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// AddItem agrega una línea a la orden. Valida disponibilidad contra el libro
// de stock, persiste la línea, registra la salida de inventario que la surte
// y re-suma los totales — todo en una transacción.
func (uc *OrderUseCase) AddItem(ctx context.Context, userID, role, orderID string, in ItemInput) (*entity.OrderItem, error) {
	if in.Quantity <= 0 || in.ArticleID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var item *entity.OrderItem
	err := uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		order, err := uc.lockMutableOrder(ctx, r, orderID, role)
		if err != nil {
			return err
		}
		article, err := r.Articles().GetByID(ctx, in.ArticleID)
		if err != nil {
			return err
		}
		if article == nil {
			return domain.ErrNotFound
		}
		price := in.UnitPrice
		if price.IsZero() {
			price = article.UnitPrice
		}

		// A diferencia de los movimientos directos, para una venta un par
		// (artículo, almacén) jamás surtido es un error, no una entrada
		// perezosa en cero.
		stock, err := r.Stock().GetForUpdate(ctx, in.ArticleID, in.WarehouseID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNoStockRecord
		}

		now := time.Now()
		item = &entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ArticleID:   in.ArticleID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.Quantity,
			UnitPrice:   price,
			CreatedBy:   userID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := r.Orders().CreateItem(ctx, item); err != nil {
			return err
		}
		if _, err := uc.recorder.RegisterInTx(ctx, r, inventory.MovementInput{
			UserID:      userID,
			ArticleID:   in.ArticleID,
			WarehouseID: in.WarehouseID,
			Kind:        entity.MovementSalida,
			Quantity:    decimal.NewFromInt(int64(in.Quantity)),
			Description: fmt.Sprintf("Salida por orden de servicio %s", order.Code),
			OrderID:     order.ID,
		}); err != nil {
			return err
		}
		return uc.persistTotals(ctx, r, order)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem edita cantidad/precio (y opcionalmente artículo o almacén) de
// una línea. El descuento de stock se ajusta por el delta neto: lo que la
// línea ya tenía descontado no se vuelve a exigir.
func (uc *OrderUseCase) UpdateItem(ctx context.Context, userID, role, orderID, itemID string, in ItemInput) (*entity.OrderItem, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.OrderItem
	err := uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		order, err := uc.lockMutableOrder(ctx, r, orderID, role)
		if err != nil {
			return err
		}
		item, err := r.Orders().GetItem(ctx, orderID, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		newArticleID := item.ArticleID
		if in.ArticleID != "" {
			newArticleID = in.ArticleID
		}
		newWarehouseID := item.WarehouseID
		if in.WarehouseID != "" {
			newWarehouseID = in.WarehouseID
		}

		samePair := newArticleID == item.ArticleID && newWarehouseID == item.WarehouseID
		if samePair {
			if err := uc.applyQuantityDelta(ctx, r, userID, order, item, in.Quantity); err != nil {
				return err
			}
		} else {
			// Cambió el par: devolver todo lo surtido al par anterior y
			// surtir completo desde el nuevo.
			if _, err := uc.recorder.RegisterInTx(ctx, r, inventory.MovementInput{
				UserID:      userID,
				ArticleID:   item.ArticleID,
				WarehouseID: item.WarehouseID,
				Kind:        entity.MovementEntrada,
				Quantity:    decimal.NewFromInt(int64(item.Quantity)),
				Description: fmt.Sprintf("Devolución por edición de línea de la orden %s", order.Code),
				OrderID:     order.ID,
			}); err != nil {
				return err
			}
			stock, err := r.Stock().GetForUpdate(ctx, newArticleID, newWarehouseID)
			if err != nil {
				return err
			}
			if stock == nil {
				return domain.ErrNoStockRecord
			}
			if _, err := uc.recorder.RegisterInTx(ctx, r, inventory.MovementInput{
				UserID:      userID,
				ArticleID:   newArticleID,
				WarehouseID: newWarehouseID,
				Kind:        entity.MovementSalida,
				Quantity:    decimal.NewFromInt(int64(in.Quantity)),
				Description: fmt.Sprintf("Salida por orden de servicio %s", order.Code),
				OrderID:     order.ID,
			}); err != nil {
				return err
			}
		}

		item.ArticleID = newArticleID
		item.WarehouseID = newWarehouseID
		item.Quantity = in.Quantity
		if !in.UnitPrice.IsZero() {
			item.UnitPrice = in.UnitPrice
		}
		item.UpdatedAt = time.Now()
		if err := r.Orders().UpdateItem(ctx, item); err != nil {
			return err
		}
		updated = item
		return uc.persistTotals(ctx, r, order)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyQuantityDelta registra el movimiento que cubre la diferencia entre la
// cantidad anterior de la línea y la nueva, sobre el mismo par.
func (uc *OrderUseCase) applyQuantityDelta(ctx context.Context, r repository.TxRepos, userID string, order *entity.Order, item *entity.OrderItem, newQuantity int) error {
	delta := newQuantity - item.Quantity
	if delta == 0 {
		return nil
	}
	in := inventory.MovementInput{
		UserID:      userID,
		ArticleID:   item.ArticleID,
		WarehouseID: item.WarehouseID,
		OrderID:     order.ID,
	}
	if delta > 0 {
		in.Kind = entity.MovementSalida
		in.Quantity = decimal.NewFromInt(int64(delta))
		in.Description = fmt.Sprintf("Salida por orden de servicio %s", order.Code)
	} else {
		in.Kind = entity.MovementEntrada
		in.Quantity = decimal.NewFromInt(int64(-delta))
		in.Description = fmt.Sprintf("Devolución por edición de línea de la orden %s", order.Code)
	}
	_, err := uc.recorder.RegisterInTx(ctx, r, in)
	return err
}

// RemoveItem elimina una línea devolviendo al stock la cantidad que surtía.
func (uc *OrderUseCase) RemoveItem(ctx context.Context, userID, role, orderID, itemID string) error {
	return uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		order, err := uc.lockMutableOrder(ctx, r, orderID, role)
		if err != nil {
			return err
		}
		item, err := r.Orders().GetItem(ctx, orderID, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if _, err := uc.recorder.RegisterInTx(ctx, r, inventory.MovementInput{
			UserID:      userID,
			ArticleID:   item.ArticleID,
			WarehouseID: item.WarehouseID,
			Kind:        entity.MovementEntrada,
			Quantity:    decimal.NewFromInt(int64(item.Quantity)),
			Description: fmt.Sprintf("Devolución por eliminación de línea de la orden %s", order.Code),
			OrderID:     order.ID,
		}); err != nil {
			return err
		}
		if err := r.Orders().DeleteItem(ctx, orderID, itemID); err != nil {
			return err
		}
		return uc.persistTotals(ctx, r, order)
	})
}

// UpdateOrderInput cambios de cabecera. Campos nil no se tocan.
type UpdateOrderInput struct {
	Status      *string
	ServicePct  *decimal.Decimal
	TaxPct      *decimal.Decimal
	DiscountPct *decimal.Decimal
}

// Update aplica cambios de cabecera: transición de estado (con estampa o
// limpieza de la fecha de cierre) y porcentajes. Los porcentajes solo se
// pueden mover mientras la orden está abierta.
func (uc *OrderUseCase) Update(ctx context.Context, role, orderID string, in UpdateOrderInput) (*entity.Order, error) {
	var order *entity.Order
	err := uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		var err error
		order, err = r.Orders().GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.IsMutable(role) {
			return domain.ErrForbidden
		}

		if in.ServicePct != nil || in.TaxPct != nil || in.DiscountPct != nil {
			if order.Status != entity.OrderAbierta {
				return domain.ErrConflict
			}
			if err := applyPct(&order.ServicePct, in.ServicePct); err != nil {
				return err
			}
			if err := applyPct(&order.TaxPct, in.TaxPct); err != nil {
				return err
			}
			if err := applyPct(&order.DiscountPct, in.DiscountPct); err != nil {
				return err
			}
		}

		if in.Status != nil {
			if !entity.ValidOrderStatus(*in.Status) {
				return domain.ErrInvalidInput
			}
			if !order.CanTransition(*in.Status) {
				return domain.ErrConflict
			}
			order.ApplyStatus(*in.Status, time.Now())
		}

		return uc.persistTotals(ctx, r, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func applyPct(dst *decimal.Decimal, v *decimal.Decimal) error {
	if v == nil {
		return nil
	}
	if v.IsNegative() {
		return domain.ErrInvalidInput
	}
	*dst = *v
	return nil
}

// lockMutableOrder bloquea la cabecera y verifica que admita mutaciones:
// candado de facturada por rol y rechazo de órdenes anuladas.
func (uc *OrderUseCase) lockMutableOrder(ctx context.Context, r repository.TxRepos, orderID, role string) (*entity.Order, error) {
	order, err := r.Orders().GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.OrderAnulada {
		return nil, domain.ErrConflict
	}
	if !order.IsMutable(role) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// persistTotals re-suma los totales desde el conjunto vivo de líneas y los
// persiste aunque la cabecera no se esté guardando por otra razón.
func (uc *OrderUseCase) persistTotals(ctx context.Context, r repository.TxRepos, order *entity.Order) error {
	items, err := r.Orders().ListItems(ctx, order.ID)
	if err != nil {
		return err
	}
	order.RecomputeTotals(items)
	return r.Orders().Update(ctx, order)
}

// Get devuelve una orden con sus líneas.
func (uc *OrderUseCase) Get(ctx context.Context, orderID string) (*entity.Order, []*entity.OrderItem, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// List lista órdenes, opcionalmente filtradas por estado.
func (uc *OrderUseCase) List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.orderRepo.List(ctx, status, limit, offset)
}

// Receipt genera el PDF del recibo. Solo órdenes cerradas o facturadas tienen
// recibo: una orden abierta todavía cambia y una anulada no se cobra.
func (uc *OrderUseCase) Receipt(ctx context.Context, orderID string) ([]byte, error) {
	order, items, err := uc.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderCerrada && order.Status != entity.OrderFacturada {
		return nil, domain.ErrConflict
	}

	customerName := order.CustomerDocument
	if customer, err := uc.customerRepo.GetByID(ctx, order.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}

	lines := make([]ReceiptLine, 0, len(items))
	for _, item := range items {
		name := item.ArticleID
		if article, err := uc.articleRepo.GetByID(ctx, item.ArticleID); err == nil && article != nil {
			name = article.Name
		}
		lines = append(lines, ReceiptLine{
			ArticleName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		})
	}
	return uc.receipts.Generate(order, customerName, lines)
}

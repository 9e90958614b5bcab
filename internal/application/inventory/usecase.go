package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/codes"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

// MovementUseCase registra movimientos de inventario (entrada, salida,
// ajuste) de forma transaccional: bloqueo de fila en stock (SELECT FOR
// UPDATE), verificación de disponibilidad, código generado y commit o
// rollback completos. Los movimientos confirmados nunca se editan ni se
// borran; las correcciones se hacen con un ajuste compensatorio.
type MovementUseCase struct {
	tx            repository.TxRunner
	articleRepo   repository.ArticleRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	movementRepo  repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	tx repository.TxRunner,
	articleRepo repository.ArticleRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.MovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		tx:            tx,
		articleRepo:   articleRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		movementRepo:  movementRepo,
	}
}

// MovementInput entrada para registrar un movimiento.
// Quantity es la magnitud (positiva) para entrada/salida; para ajuste es el
// delta firmado que decide el solicitante, y Reason es obligatorio.
type MovementInput struct {
	UserID      string
	ArticleID   string
	WarehouseID string
	Kind        string
	Quantity    decimal.Decimal
	Reason      string
	Description string
	OrderID     string // orden de origen para salidas por consumo
}

// signedDelta valida el input y devuelve el delta firmado a aplicar al stock.
// Convención: entrada +|q|, salida -|q|, ajuste tal cual llega.
func signedDelta(in MovementInput) (decimal.Decimal, error) {
	if in.ArticleID == "" || in.WarehouseID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	switch in.Kind {
	case entity.MovementEntrada:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return in.Quantity, nil
	case entity.MovementSalida:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return in.Quantity.Neg(), nil
	case entity.MovementAjuste:
		if in.Reason == "" || in.Quantity.IsZero() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return in.Quantity, nil
	}
	return decimal.Zero, domain.ErrInvalidInput
}

// Register valida el movimiento, verifica que artículo y almacén existan y
// lo aplica dentro de una transacción propia.
func (uc *MovementUseCase) Register(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	if _, err := signedDelta(in); err != nil {
		return nil, err
	}
	article, err := uc.articleRepo.GetByID(ctx, in.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}

	var mov *entity.Movement
	err = uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		m, err := uc.RegisterInTx(ctx, r, in)
		if err != nil {
			return err
		}
		mov = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterInTx aplica un movimiento usando los repositorios de la transacción
// del caller (la orden de servicio lo invoca para surtir sus líneas dentro de
// su propia transacción). Secuencia: bloquear/crear la fila de stock,
// pre-verificar deltas negativos, asignar código M, insertar el movimiento
// inmutable y aplicar el delta. Todo o nada.
func (uc *MovementUseCase) RegisterInTx(ctx context.Context, r repository.TxRepos, in MovementInput) (*entity.Movement, error) {
	delta, err := signedDelta(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stock, err := r.Stock().GetForUpdate(ctx, in.ArticleID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		// Entrada perezosa: el par (artículo, almacén) nace en cero con su
		// primer movimiento.
		stock = &entity.Stock{
			ArticleID:   in.ArticleID,
			WarehouseID: in.WarehouseID,
			Quantity:    decimal.Zero,
		}
	}
	newQty := stock.Quantity.Add(delta)
	if newQty.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}

	code, err := r.Codes().Next(ctx, codes.KindMovement)
	if err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		Code:        code,
		ArticleID:   in.ArticleID,
		WarehouseID: in.WarehouseID,
		Kind:        in.Kind,
		Quantity:    delta,
		OrderID:     in.OrderID,
		Reason:      in.Reason,
		Description: in.Description,
		CreatedAt:   now,
		CreatedBy:   in.UserID,
	}
	if err := r.Movements().Create(ctx, mov); err != nil {
		return nil, err
	}

	stock.Quantity = newQty
	stock.UpdatedAt = now
	if err := r.Stock().Upsert(ctx, stock); err != nil {
		return nil, err
	}
	return mov, nil
}

// StockInfo resultado de la consulta de stock para prellenado de formularios.
type StockInfo struct {
	Quantity  decimal.Decimal
	UnitLabel string
}

// LookupStock devuelve la cantidad disponible y la etiqueta de unidad para un
// par (artículo, almacén). Sin entrada de stock no es un error: cantidad cero
// y etiqueta vacía.
func (uc *MovementUseCase) LookupStock(ctx context.Context, articleID, warehouseID string) (StockInfo, error) {
	info := StockInfo{Quantity: decimal.Zero}
	if articleID == "" || warehouseID == "" {
		return info, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Get(ctx, articleID, warehouseID)
	if err != nil {
		return info, err
	}
	if stock == nil {
		return info, nil
	}
	info.Quantity = stock.Quantity
	if article, err := uc.articleRepo.GetByID(ctx, articleID); err == nil && article != nil {
		info.UnitLabel = entity.UnitLabel(article.Unit)
	}
	return info, nil
}

// ListByArticle lista el diario de movimientos de un artículo.
func (uc *MovementUseCase) ListByArticle(ctx context.Context, articleID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return uc.movementRepo.ListByArticle(ctx, articleID, from, to, limit, offset)
}

// ListByWarehouse lista el diario de movimientos de un almacén.
func (uc *MovementUseCase) ListByWarehouse(ctx context.Context, warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return uc.movementRepo.ListByWarehouse(ctx, warehouseID, from, to, limit, offset)
}

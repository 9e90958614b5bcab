package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/codes"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

// WarehouseUseCase gestiona el catálogo de almacenes.
type WarehouseUseCase struct {
	tx            repository.TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(tx repository.TxRunner, warehouseRepo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{tx: tx, warehouseRepo: warehouseRepo}
}

// CreateWarehouseInput datos para registrar un almacén.
type CreateWarehouseInput struct {
	Name     string
	Kind     string
	Location string
}

// Create registra un almacén con código A generado.
func (uc *WarehouseUseCase) Create(ctx context.Context, in CreateWarehouseInput) (*entity.Warehouse, error) {
	if in.Name == "" || !entity.ValidWarehouseKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	var warehouse *entity.Warehouse
	err := uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		code, err := r.Codes().Next(ctx, codes.KindWarehouse)
		if err != nil {
			return err
		}
		now := time.Now()
		warehouse = &entity.Warehouse{
			ID:        uuid.New().String(),
			Code:      code,
			Name:      in.Name,
			Kind:      in.Kind,
			Location:  in.Location,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return r.Warehouses().Create(ctx, warehouse)
	})
	if err != nil {
		return nil, err
	}
	return warehouse, nil
}

// UpdateWarehouseInput cambios de un almacén. Campos nil no se tocan.
type UpdateWarehouseInput struct {
	Name     *string
	Kind     *string
	Location *string
}

// Update aplica cambios parciales. El código es inmutable.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in UpdateWarehouseInput) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		warehouse.Name = *in.Name
	}
	if in.Kind != nil {
		if !entity.ValidWarehouseKind(*in.Kind) {
			return nil, domain.ErrInvalidInput
		}
		warehouse.Kind = *in.Kind
	}
	if in.Location != nil {
		warehouse.Location = *in.Location
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// Get devuelve un almacén por ID.
func (uc *WarehouseUseCase) Get(ctx context.Context, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return warehouse, nil
}

// List lista almacenes paginados.
func (uc *WarehouseUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	return uc.warehouseRepo.List(ctx, limit, offset)
}

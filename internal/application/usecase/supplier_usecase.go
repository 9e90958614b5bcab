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

// SupplierUseCase gestiona el catálogo de proveedores.
type SupplierUseCase struct {
	tx           repository.TxRunner
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(tx repository.TxRunner, supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{tx: tx, supplierRepo: supplierRepo}
}

// CreateSupplierInput datos para registrar un proveedor.
type CreateSupplierInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Create registra un proveedor con código P generado.
func (uc *SupplierUseCase) Create(ctx context.Context, in CreateSupplierInput) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	var supplier *entity.Supplier
	err := uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		code, err := r.Codes().Next(ctx, codes.KindSupplier)
		if err != nil {
			return err
		}
		now := time.Now()
		supplier = &entity.Supplier{
			ID:        uuid.New().String(),
			Code:      code,
			Name:      in.Name,
			Phone:     in.Phone,
			Email:     in.Email,
			Address:   in.Address,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return r.Suppliers().Create(ctx, supplier)
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplierInput cambios de un proveedor. Campos nil no se tocan.
type UpdateSupplierInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// Update aplica cambios parciales. El código es inmutable.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Name = *in.Name
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Get devuelve un proveedor por ID.
func (uc *SupplierUseCase) Get(ctx context.Context, id string) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

// List lista proveedores paginados.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List(ctx, limit, offset)
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(ctx, id)
}

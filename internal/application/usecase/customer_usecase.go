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

// CustomerUseCase gestiona el catálogo de clientes (huéspedes y visitantes)
// y sus asignaciones de villa y mesa.
type CustomerUseCase struct {
	tx           repository.TxRunner
	customerRepo repository.CustomerRepository
	locationRepo repository.LocationRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(tx repository.TxRunner, customerRepo repository.CustomerRepository, locationRepo repository.LocationRepository) *CustomerUseCase {
	return &CustomerUseCase{tx: tx, customerRepo: customerRepo, locationRepo: locationRepo}
}

// CreateCustomerInput datos para registrar un cliente.
type CreateCustomerInput struct {
	Name               string
	IdentificationKind string
	Document           string
	Address            string
	Phone              string
	Kind               string
	VillaID            string
	MesaID             string
}

// Create registra un cliente con código C generado. Reglas de asignación:
// un huésped requiere villa y mesa; un visitante puede tener mesa pero no villa.
func (uc *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (*entity.Customer, error) {
	if in.Name == "" || in.Document == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidIdentificationKind(in.IdentificationKind) || !entity.ValidCustomerKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		IdentificationKind: in.IdentificationKind,
		Document:           in.Document,
		Address:            in.Address,
		Phone:              in.Phone,
		Kind:               in.Kind,
		VillaID:            in.VillaID,
		MesaID:             in.MesaID,
	}
	if !customer.ValidateAssignments() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkLocation(ctx, in.VillaID, entity.LocationVilla); err != nil {
		return nil, err
	}
	if err := uc.checkLocation(ctx, in.MesaID, entity.LocationMesa); err != nil {
		return nil, err
	}

	err := uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		code, err := r.Codes().Next(ctx, codes.KindCustomer)
		if err != nil {
			return err
		}
		now := time.Now()
		customer.Code = code
		customer.CreatedAt = now
		customer.UpdatedAt = now
		return r.Customers().Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// checkLocation verifica que la locación exista y sea del tipo esperado.
// ID vacío pasa: la obligatoriedad la decide ValidateAssignments.
func (uc *CustomerUseCase) checkLocation(ctx context.Context, id, kind string) error {
	if id == "" {
		return nil
	}
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	if loc.Kind != kind {
		return domain.ErrInvalidInput
	}
	return nil
}

// UpdateCustomerInput cambios de un cliente. Campos nil no se tocan. Villa y
// mesa usan punteros a string para distinguir "no tocar" (nil) de
// "desasignar" (cadena vacía).
type UpdateCustomerInput struct {
	Name    *string
	Address *string
	Phone   *string
	Kind    *string
	VillaID *string
	MesaID  *string
}

// Update aplica cambios parciales re-validando las reglas de asignación con
// el estado resultante. El documento y el código son inmutables.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Kind != nil {
		if !entity.ValidCustomerKind(*in.Kind) {
			return nil, domain.ErrInvalidInput
		}
		customer.Kind = *in.Kind
	}
	if in.VillaID != nil {
		customer.VillaID = *in.VillaID
	}
	if in.MesaID != nil {
		customer.MesaID = *in.MesaID
	}
	if !customer.ValidateAssignments() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkLocation(ctx, customer.VillaID, entity.LocationVilla); err != nil {
		return nil, err
	}
	if err := uc.checkLocation(ctx, customer.MesaID, entity.LocationMesa); err != nil {
		return nil, err
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Get devuelve un cliente por ID.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// List lista clientes paginados.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	return uc.customerRepo.List(ctx, limit, offset)
}

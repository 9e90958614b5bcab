package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

// LocationUseCase gestiona villas y mesas. El código lo asigna el operador
// (V-12, M-03...), no el generador de códigos.
type LocationUseCase struct {
	locationRepo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locationRepo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo}
}

// CreateLocationInput datos para registrar una villa o mesa.
type CreateLocationInput struct {
	Kind     string
	Code     string
	Capacity int
}

// Create registra una locación.
func (uc *LocationUseCase) Create(ctx context.Context, in CreateLocationInput) (*entity.Location, error) {
	if !entity.ValidLocationKind(in.Kind) || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Capacity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	loc := &entity.Location{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Code:      in.Code,
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// UpdateLocationInput cambios de una locación. Campos nil no se tocan;
// el tipo (villa/mesa) es inmutable.
type UpdateLocationInput struct {
	Code     *string
	Capacity *int
}

// Update aplica cambios parciales.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in UpdateLocationInput) (*entity.Location, error) {
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		if *in.Code == "" {
			return nil, domain.ErrInvalidInput
		}
		loc.Code = *in.Code
	}
	if in.Capacity != nil {
		if *in.Capacity < 0 {
			return nil, domain.ErrInvalidInput
		}
		loc.Capacity = *in.Capacity
	}
	loc.UpdatedAt = time.Now()
	if err := uc.locationRepo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Get devuelve una locación por ID.
func (uc *LocationUseCase) Get(ctx context.Context, id string) (*entity.Location, error) {
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return loc, nil
}

// List lista locaciones, opcionalmente filtradas por tipo.
func (uc *LocationUseCase) List(ctx context.Context, kind string, limit, offset int) ([]*entity.Location, error) {
	if kind != "" && !entity.ValidLocationKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	return uc.locationRepo.List(ctx, kind, limit, offset)
}

// Delete elimina una locación.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return uc.locationRepo.Delete(ctx, id)
}

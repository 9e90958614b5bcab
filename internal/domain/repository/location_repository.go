package repository

import (
	"context"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia de villas y mesas.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context, kind string, limit, offset int) ([]*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id string) error
}

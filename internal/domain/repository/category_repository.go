package repository

import (
	"context"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia de categorías de artículos.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}

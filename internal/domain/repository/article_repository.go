package repository

import (
	"context"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// ArticleRepository define el puerto de persistencia de artículos del catálogo.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id string) (*entity.Article, error)
	GetByCode(ctx context.Context, code string) (*entity.Article, error)
	List(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
}

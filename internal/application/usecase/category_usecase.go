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

// CategoryUseCase gestiona las categorías de artículos. La unicidad del
// nombre (sin acentos ni mayúsculas) la garantiza la columna name_key; aquí
// solo se valida forma.
type CategoryUseCase struct {
	tx           repository.TxRunner
	categoryRepo repository.CategoryRepository
	articleRepo  repository.ArticleRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(tx repository.TxRunner, categoryRepo repository.CategoryRepository, articleRepo repository.ArticleRepository) *CategoryUseCase {
	return &CategoryUseCase{tx: tx, categoryRepo: categoryRepo, articleRepo: articleRepo}
}

// CreateCategoryInput datos para registrar una categoría.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// Create registra una categoría con código T generado.
func (uc *CategoryUseCase) Create(ctx context.Context, in CreateCategoryInput) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	var category *entity.Category
	err := uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		code, err := r.Codes().Next(ctx, codes.KindCategory)
		if err != nil {
			return err
		}
		now := time.Now()
		category = &entity.Category{
			ID:          uuid.New().String(),
			Code:        code,
			Name:        in.Name,
			Description: in.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return r.Categories().Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategoryInput cambios de una categoría. Campos nil no se tocan.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// Update aplica cambios parciales. El código es inmutable.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in UpdateCategoryInput) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get devuelve una categoría por ID.
func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// List lista categorías paginadas.
func (uc *CategoryUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx, limit, offset)
}

// Delete elimina una categoría. Falla con conflicto si todavía tiene
// artículos asociados.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	articles, err := uc.articleRepo.List(ctx, id, 1, 0)
	if err != nil {
		return err
	}
	if len(articles) > 0 {
		return domain.ErrConflict
	}
	return uc.categoryRepo.Delete(ctx, id)
}

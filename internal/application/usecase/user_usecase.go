// Package usecase contiene los casos de uso de catálogo: usuarios, clientes,
// proveedores, categorías, artículos, almacenes y locaciones. Los módulos con
// lógica transaccional pesada (inventario, órdenes) viven en sus propios
// paquetes.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/codes"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

// Estados de cuenta de un usuario.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// UserUseCase gestiona el catálogo de usuarios operativos.
type UserUseCase struct {
	tx       repository.TxRunner
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(tx repository.TxRunner, userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{tx: tx, userRepo: userRepo}
}

// CreateUserInput datos para registrar un usuario.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	Document string
}

// Create registra un usuario con la contraseña picada con bcrypt y un código
// de cuatro dígitos generado en la misma transacción del insert.
func (uc *UserUseCase) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	err = uc.tx.Tx(ctx, func(r repository.TxRepos) error {
		code, err := r.Codes().Next(ctx, codes.KindUser)
		if err != nil {
			return err
		}
		now := time.Now()
		user = &entity.User{
			ID:           uuid.New().String(),
			Code:         code,
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: string(hash),
			Role:         in.Role,
			Phone:        in.Phone,
			Document:     in.Document,
			Status:       UserActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return r.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserInput cambios de un usuario. Campos nil no se tocan.
type UpdateUserInput struct {
	Name     *string
	Role     *string
	Phone    *string
	Document *string
	Status   *string
	Password *string
}

// Update aplica cambios parciales. El código y el email son inmutables.
func (uc *UserUseCase) Update(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Document != nil {
		user.Document = *in.Document
	}
	if in.Status != nil {
		if *in.Status != UserActive && *in.Status != UserInactive {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get devuelve un usuario por ID.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// List lista usuarios paginados.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return uc.userRepo.List(ctx, limit, offset)
}

// Package auth implementa el inicio de sesión: verificación de credenciales
// con bcrypt y emisión del token JWT que el middleware HTTP valida.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/dcontreras/resort-ops/internal/domain"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
	"github.com/dcontreras/resort-ops/pkg/jwt"
)

// UseCase gestiona autenticación de usuarios.
type UseCase struct {
	userRepo   repository.UserRepository
	secret     string
	issuer     string
	expMinutes int
}

// NewUseCase construye el caso de uso con los parámetros de firma del token.
func NewUseCase(userRepo repository.UserRepository, secret, issuer string, expMinutes int) *UseCase {
	return &UseCase{userRepo: userRepo, secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// LoginResult token emitido y datos básicos del usuario autenticado.
type LoginResult struct {
	Token string
	User  *entity.User
}

// Login verifica credenciales y emite un token. Email desconocido y
// contraseña errada responden lo mismo para no filtrar cuáles correos existen.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "" && user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.secret, user.ID, user.Role, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleMesonero   = "mesonero"
	RoleCocinero   = "cocinero"
	RoleCajero     = "cajero"
)

// User representa un usuario operativo del hotel (mesonero, cajero, etc.).
// Las credenciales/sesión viven en pkg/jwt y el middleware de auth; aquí
// solo los datos planos del usuario.
type User struct {
	ID           string
	Code         string // código generado de 4 dígitos, ej. "0001"
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string
	Phone        string
	Document     string // documento de identidad
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsElevatedRole indica si un rol puede modificar órdenes facturadas.
func IsElevatedRole(role string) bool {
	return role == RoleAdmin || role == RoleSupervisor
}

// ValidRole valida que el rol sea uno de los enumerados.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleMesonero, RoleCocinero, RoleCajero:
		return true
	}
	return false
}

// Package domain define los errores centinela que los casos de uso devuelven
// y que la capa HTTP traduce a códigos de estado. Los errores se comparan
// con errors.Is; los mensajes son para el operador, no para el cliente HTTP.
package domain

import "errors"

// Errores centinela del dominio.
var (
	// ErrInvalidInput datos malformados o que violan una regla de validación.
	ErrInvalidInput = errors.New("datos inválidos")

	// ErrNotFound la entidad referida no existe.
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrDuplicate choque con una restricción de unicidad (código, nombre,
	// documento o email ya registrados).
	ErrDuplicate = errors.New("registro duplicado")

	// ErrConflict la operación es válida en sí pero el estado actual de la
	// entidad no la admite (transición de estado ilegal, orden anulada).
	ErrConflict = errors.New("conflicto con el estado actual")

	// ErrInsufficientStock el movimiento dejaría el stock por debajo de cero.
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrNoStockRecord el par (artículo, almacén) jamás ha tenido stock; se
	// distingue de ErrInsufficientStock para que el operador sepa que debe
	// surtir el almacén, no solo reponer.
	ErrNoStockRecord = errors.New("el artículo nunca ha tenido stock en ese almacén")

	// ErrUnauthorized credenciales inválidas o token ausente/expirado.
	ErrUnauthorized = errors.New("no autenticado")

	// ErrForbidden el rol del usuario no permite la operación.
	ErrForbidden = errors.New("operación no permitida para el rol")
)

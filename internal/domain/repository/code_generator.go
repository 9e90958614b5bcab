package repository

import (
	"context"

	"github.com/dcontreras/resort-ops/internal/domain/codes"
)

// CodeGenerator genera el siguiente código legible de una familia (A00001,
// M000001...). Debe invocarse dentro de la misma transacción que inserta la
// entidad dueña; la implementación serializa generadores concurrentes de la
// misma familia y sondea hacia arriba ante colisiones, que nunca se exponen
// al solicitante.
type CodeGenerator interface {
	Next(ctx context.Context, kind codes.Kind) (string, error)
}

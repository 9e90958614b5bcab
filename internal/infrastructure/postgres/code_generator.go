package postgres

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/jackc/pgx/v5"

	"github.com/dcontreras/resort-ops/internal/domain/codes"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

var _ repository.CodeGenerator = (*CodeGenerator)(nil)

// codeTables tabla y columna donde vive el código de cada familia.
var codeTables = map[codes.Kind]struct{ table, column string }{
	codes.KindUser:      {"users", "code"},
	codes.KindCustomer:  {"customers", "code"},
	codes.KindSupplier:  {"suppliers", "code"},
	codes.KindCategory:  {"categories", "code"},
	codes.KindArticle:   {"articles", "code"},
	codes.KindWarehouse: {"warehouses", "code"},
	codes.KindMovement:  {"movements", "code"},
	codes.KindOrder:     {"orders", "code"},
}

// CodeGenerator asigna códigos legibles consultando el máximo existente de la
// familia. Debe usarse dentro de la transacción que inserta la entidad dueña.
//
// Dos generadores concurrentes de la misma familia se serializan con un
// advisory lock transaccional por familia: FOR UPDATE no sirve aquí porque
// con la tabla vacía no hay fila que bloquear. Tras calcular el candidato se
// sondea hacia arriba mientras el código ya exista, así una colisión con
// códigos históricos jamás se expone al solicitante.
type CodeGenerator struct {
	q Querier
}

// NewCodeGenerator construye el generador. Pasar el Querier de la tx.
func NewCodeGenerator(q Querier) *CodeGenerator {
	return &CodeGenerator{q: q}
}

// Next devuelve el siguiente código libre de la familia.
func (g *CodeGenerator) Next(ctx context.Context, kind codes.Kind) (string, error) {
	spec, ok := codes.SpecFor(kind)
	if !ok {
		return "", fmt.Errorf("familia de códigos desconocida: %s", kind)
	}
	target, ok := codeTables[kind]
	if !ok {
		return "", fmt.Errorf("familia de códigos sin tabla: %s", kind)
	}

	// Advisory lock por familia, liberado al cerrar la transacción.
	if _, err := g.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey(kind)); err != nil {
		return "", fmt.Errorf("advisory lock %s: %w", kind, err)
	}

	// El código más alto de la familia. Los códigos tienen ancho fijo, así
	// que el orden lexicográfico coincide con el numérico.
	var highest string
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT 1`, target.column, target.table, target.column)
	err := g.q.QueryRow(ctx, query).Scan(&highest)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("max code %s: %w", kind, err)
	}

	n := spec.NextAfter(highest)
	exists := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, target.table, target.column)
	for {
		code := spec.Format(n)
		var taken bool
		if err := g.q.QueryRow(ctx, exists, code).Scan(&taken); err != nil {
			return "", fmt.Errorf("probe code %s: %w", code, err)
		}
		if !taken {
			return code, nil
		}
		n++
	}
}

// lockKey deriva la clave del advisory lock a partir del nombre de la familia.
func lockKey(kind codes.Kind) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("resort-ops/codes/"))
	_, _ = h.Write([]byte(kind))
	return int64(h.Sum64())
}

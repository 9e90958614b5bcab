package entity

import "time"

// Tipos de almacén.
const (
	WarehousePrincipal  = "principal"
	WarehouseSecundario = "secundario"
)

// Warehouse representa un almacén del resort donde se guarda inventario.
type Warehouse struct {
	ID        string
	Code      string // código generado A001
	Name      string // único (comparación sin acentos)
	Kind      string // principal, secundario
	Location  string // texto libre de ubicación
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidWarehouseKind valida el tipo de almacén.
func ValidWarehouseKind(kind string) bool {
	return kind == WarehousePrincipal || kind == WarehouseSecundario
}

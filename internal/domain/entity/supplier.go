package entity

import "time"

// Supplier representa un proveedor del resort (solo catálogo).
type Supplier struct {
	ID        string
	Code      string // código generado P000001
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// Category representa una categoría de artículos (bebidas, blancos, limpieza...).
type Category struct {
	ID          string
	Code        string // código generado T001
	Name        string // único (comparación sin acentos)
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

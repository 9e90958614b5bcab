package entity

import "time"

// Tipos de identificación del cliente.
const (
	IdentificationVenezolano = "V"
	IdentificationExtranjero = "E"
	IdentificationPasaporte  = "P"
)

// Tipos de cliente.
const (
	CustomerHuesped   = "huesped"
	CustomerVisitante = "visitante"
)

// Customer representa un cliente del resort (huésped o visitante).
type Customer struct {
	ID                 string
	Code               string // código generado C000001
	Name               string
	IdentificationKind string // V, E, P
	Document           string // único
	Address            string
	Phone              string
	Kind               string // huesped, visitante
	VillaID            string // vacío si no aplica
	MesaID             string // vacío si no aplica
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ValidIdentificationKind valida el tipo de identificación.
func ValidIdentificationKind(kind string) bool {
	switch kind {
	case IdentificationVenezolano, IdentificationExtranjero, IdentificationPasaporte:
		return true
	}
	return false
}

// ValidCustomerKind valida el tipo de cliente.
func ValidCustomerKind(kind string) bool {
	return kind == CustomerHuesped || kind == CustomerVisitante
}

// ValidateAssignments aplica las reglas de locación según el tipo de cliente:
// un huésped debe tener villa y mesa asignadas; un visitante no debe tener villa.
func (c *Customer) ValidateAssignments() bool {
	switch c.Kind {
	case CustomerHuesped:
		return c.VillaID != "" && c.MesaID != ""
	case CustomerVisitante:
		return c.VillaID == ""
	}
	return false
}

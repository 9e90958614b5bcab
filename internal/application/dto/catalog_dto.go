package dto

import (
	"time"

	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Kind     string `json:"kind"` // villa|mesa
	Code     string `json:"code"` // lo asigna el operador: V-12, M-03...
	Capacity int    `json:"capacity,omitempty"`
}

// UpdateLocationRequest cambios parciales de una locación.
type UpdateLocationRequest struct {
	Code     *string `json:"code,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

// LocationResponse locación en respuestas.
type LocationResponse struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Code     string `json:"code"`
	Capacity int    `json:"capacity,omitempty"`
}

// ToLocationResponse mapea la entidad a su respuesta HTTP.
func ToLocationResponse(l *entity.Location) LocationResponse {
	return LocationResponse{ID: l.ID, Kind: l.Kind, Code: l.Code, Capacity: l.Capacity}
}

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name               string `json:"name"`
	IdentificationKind string `json:"identification_kind"` // V|E|P
	Document           string `json:"document"`
	Address            string `json:"address,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Kind               string `json:"kind"` // huesped|visitante
	VillaID            string `json:"villa_id,omitempty"`
	MesaID             string `json:"mesa_id,omitempty"`
}

// UpdateCustomerRequest cambios parciales de un cliente. VillaID/MesaID en
// cadena vacía desasignan; omitidos no se tocan.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Kind    *string `json:"kind,omitempty"`
	VillaID *string `json:"villa_id,omitempty"`
	MesaID  *string `json:"mesa_id,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	IdentificationKind string    `json:"identification_kind"`
	Document           string    `json:"document"`
	Address            string    `json:"address,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Kind               string    `json:"kind"`
	VillaID            string    `json:"villa_id,omitempty"`
	MesaID             string    `json:"mesa_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToCustomerResponse mapea la entidad a su respuesta HTTP.
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                 c.ID,
		Code:               c.Code,
		Name:               c.Name,
		IdentificationKind: c.IdentificationKind,
		Document:           c.Document,
		Address:            c.Address,
		Phone:              c.Phone,
		Kind:               c.Kind,
		VillaID:            c.VillaID,
		MesaID:             c.MesaID,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateSupplierRequest cambios parciales de un proveedor.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// ToSupplierResponse mapea la entidad a su respuesta HTTP.
func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Code: s.Code, Name: s.Name, Phone: s.Phone, Email: s.Email, Address: s.Address}
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateCategoryRequest cambios parciales de una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToCategoryResponse mapea la entidad a su respuesta HTTP.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Code: c.Code, Name: c.Name, Description: c.Description}
}

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"` // principal|secundario
	Location string `json:"location,omitempty"`
}

// UpdateWarehouseRequest cambios parciales de un almacén.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name,omitempty"`
	Kind     *string `json:"kind,omitempty"`
	Location *string `json:"location,omitempty"`
}

// WarehouseResponse almacén en respuestas.
type WarehouseResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Location string `json:"location,omitempty"`
}

// ToWarehouseResponse mapea la entidad a su respuesta HTTP.
func ToWarehouseResponse(w *entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{ID: w.ID, Code: w.Code, Name: w.Name, Kind: w.Kind, Location: w.Location}
}

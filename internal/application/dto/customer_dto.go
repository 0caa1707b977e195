package dto

import "time"

// CustomerResponse cliente serializado.
type CustomerResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Documento     string    `json:"documento"`
	TipoDocumento string    `json:"tipo_documento"`
	Telefono      string    `json:"telefono,omitempty"`
	Email         string    `json:"email,omitempty"`
	Direccion     string    `json:"direccion,omitempty"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Nombre        string `json:"nombre" validate:"required"`
	Apellido      string `json:"apellido" validate:"required"`
	Documento     string `json:"documento" validate:"required"`
	TipoDocumento string `json:"tipo_documento" validate:"required,oneof=DNI RUC CE Pasaporte"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email" validate:"omitempty,email"`
	Direccion     string `json:"direccion"`
}

// UpdateCustomerRequest patch de cliente.
type UpdateCustomerRequest struct {
	Nombre        *string `json:"nombre,omitempty"`
	Apellido      *string `json:"apellido,omitempty"`
	Documento     *string `json:"documento,omitempty"`
	TipoDocumento *string `json:"tipo_documento,omitempty" validate:"omitempty,oneof=DNI RUC CE Pasaporte"`
	Telefono      *string `json:"telefono,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Direccion     *string `json:"direccion,omitempty"`
}

package dto

// SupplierResponse proveedor serializado.
type SupplierResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Contacto  string `json:"contacto"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Contacto  string `json:"contacto"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion"`
}

// UpdateSupplierRequest patch de proveedor.
type UpdateSupplierRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Contacto  *string `json:"contacto,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Direccion *string `json:"direccion,omitempty"`
}

package entity

import "time"

// Supplier representa un proveedor de productos.
// Eliminación: se anula la referencia en los productos que lo apuntan y
// luego se borra la fila (hard delete).
type Supplier struct {
	ID        string
	Nombre    string
	Contacto  string
	Telefono  string
	Email     string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}

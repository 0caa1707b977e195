package repository

import "github.com/misikss/nova-salud-api/internal/domain/entity"

// ProductFilter criterios de listado para productos.
type ProductFilter struct {
	CategoriaID string
	ProveedorID string
	Texto       string // busca en codigo y nombre
}

// ProductRepository define el puerto de persistencia para Product.
// Las lecturas de listado incluyen los nombres de categoría y proveedor.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCodigo(codigo string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Update(product *entity.Product) error
	SoftDelete(id string) error

	// DecrementStock descuenta cantidad solo si hay stock suficiente
	// (UPDATE condicional). Devuelve false si la condición no se cumplió.
	DecrementStock(productID string, cantidad int) (bool, error)
	// IncrementStock repone cantidad (anulación de venta o entrada de stock).
	IncrementStock(productID string, cantidad int) error
	// ClearProveedor anula la referencia al proveedor en sus productos.
	ClearProveedor(proveedorID string) error
}

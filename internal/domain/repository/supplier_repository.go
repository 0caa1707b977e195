package repository

import "github.com/misikss/nova-salud-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
// Delete es hard delete; el caso de uso anula antes las referencias
// en productos vía ProductRepository.ClearProveedor.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}

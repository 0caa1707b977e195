package repository

import "github.com/misikss/nova-salud-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByDocumento(documento, tipoDocumento string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	// Search busca por nombre, apellido o documento. El término llega ya
	// normalizado (minúsculas, sin tildes); la comparación en SQL aplica la
	// misma normalización sobre las columnas.
	Search(termino string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	// CountSales cuenta ventas que referencian al cliente (bloquea el borrado).
	CountSales(clienteID string) (int, error)
}

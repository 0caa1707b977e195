package repository

import "github.com/misikss/nova-salud-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByNombre(nombre string) (*entity.Category, error)
	List(includeInactive bool) ([]*entity.Category, error)
	Update(category *entity.Category) error
	SoftDelete(id string) error
	// CountActiveProducts cuenta productos activos que referencian la categoría.
	CountActiveProducts(categoriaID string) (int, error)
}

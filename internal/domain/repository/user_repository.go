package repository

import "github.com/misikss/nova-salud-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(includeInactive bool) ([]*entity.User, error)
	Update(user *entity.User) error
	SoftDelete(id string) error
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// UserUseCase casos de uso de gestión de usuarios (solo administrador).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellido:  u.Apellido,
		Email:     u.Email,
		Rol:       u.Rol,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Create da de alta un usuario con la contraseña hasheada con bcrypt.
// Devuelve ErrDuplicate si el email ya existe.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if existing, _ := uc.repo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID devuelve el usuario indicado.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List devuelve los usuarios; includeInactive incluye los desactivados.
func (uc *UserUseCase) List(includeInactive bool) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update aplica un patch parcial: solo los campos presentes se modifican.
// Cambiar el email verifica unicidad; cambiar la contraseña la rehashea.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil && *in.Email != user.Email {
		if existing, _ := uc.repo.GetByEmail(*in.Email); existing != nil {
			return nil, domain.ErrDuplicate
		}
		user.Email = *in.Email
	}
	if in.Nombre != nil {
		user.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		user.Apellido = *in.Apellido
	}
	if in.Rol != nil {
		user.Rol = *in.Rol
	}
	if in.Activo != nil {
		user.Activo = *in.Activo
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete desactiva el usuario (soft delete); sus ventas históricas se
// conservan. Un usuario no puede desactivarse a sí mismo.
func (uc *UserUseCase) Delete(id, actorID string) error {
	if id == actorID {
		return domain.ErrConflict
	}
	if _, err := uc.repo.GetByID(id); err != nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.SoftDelete(id)
}

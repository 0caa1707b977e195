package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activo:      c.Activo,
	}
}

// Create da de alta una categoría. El nombre es único.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if existing, _ := uc.repo.GetByNombre(in.Nombre); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID devuelve la categoría indicada.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// List devuelve las categorías; includeInactive incluye las desactivadas.
func (uc *CategoryUseCase) List(includeInactive bool) ([]*dto.CategoryResponse, error) {
	categories, err := uc.repo.List(includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update aplica un patch parcial sobre la categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil && *in.Nombre != category.Nombre {
		if existing, _ := uc.repo.GetByNombre(*in.Nombre); existing != nil {
			return nil, domain.ErrDuplicate
		}
		category.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		category.Descripcion = *in.Descripcion
	}
	if in.Activo != nil {
		category.Activo = *in.Activo
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete desactiva la categoría. Se rechaza con ErrConflict si todavía tiene
// productos activos asociados.
func (uc *CategoryUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return domain.ErrNotFound
	}
	count, err := uc.repo.CountActiveProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.SoftDelete(id)
}

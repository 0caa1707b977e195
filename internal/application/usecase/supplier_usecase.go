package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	txRunner CatalogTxRunner
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, txRunner CatalogTxRunner) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, txRunner: txRunner}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Nombre:    s.Nombre,
		Contacto:  s.Contacto,
		Telefono:  s.Telefono,
		Email:     s.Email,
		Direccion: s.Direccion,
	}
}

// Create da de alta un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Contacto:  in.Contacto,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID devuelve el proveedor indicado.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List() ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Update aplica un patch parcial sobre el proveedor.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		supplier.Nombre = *in.Nombre
	}
	if in.Contacto != nil {
		supplier.Contacto = *in.Contacto
	}
	if in.Telefono != nil {
		supplier.Telefono = *in.Telefono
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Direccion != nil {
		supplier.Direccion = *in.Direccion
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina el proveedor. Anular la referencia en los productos que lo
// apuntan y borrar la fila ocurren en la misma transacción; los productos
// siguen vendibles sin proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.ClearProveedor(id); err != nil {
			return err
		}
		return supplierRepo.Delete(id)
	})
}

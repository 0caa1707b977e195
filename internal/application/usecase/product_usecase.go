package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Codigo:           p.Codigo,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		CategoriaID:      p.CategoriaID,
		CategoriaNombre:  p.CategoriaNombre,
		PrecioCompra:     p.PrecioCompra,
		PrecioVenta:      p.PrecioVenta,
		StockActual:      p.StockActual,
		StockMinimo:      p.StockMinimo,
		ProveedorID:      p.ProveedorID,
		ProveedorNombre:  p.ProveedorNombre,
		FechaVencimiento: p.FechaVencimiento,
		Activo:           p.Activo,
	}
}

// Create da de alta un producto. El código es único; la categoría debe existir
// y el proveedor, si viene, también.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.PrecioCompra.LessThan(decimal.Zero) || in.PrecioVenta.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByCodigo(in.Codigo); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if _, err := uc.categoryRepo.GetByID(in.CategoriaID); err != nil {
		return nil, domain.ErrNotFound
	}
	if in.ProveedorID != "" {
		if _, err := uc.supplierRepo.GetByID(in.ProveedorID); err != nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Codigo:           in.Codigo,
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		CategoriaID:      in.CategoriaID,
		PrecioCompra:     in.PrecioCompra,
		PrecioVenta:      in.PrecioVenta,
		StockActual:      in.StockActual,
		StockMinimo:      in.StockMinimo,
		ProveedorID:      in.ProveedorID,
		FechaVencimiento: in.FechaVencimiento,
		Activo:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve el producto con nombres de categoría y proveedor.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve los productos activos que casan con el filtro.
func (uc *ProductUseCase) List(filter repository.ProductFilter) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListLowStock devuelve los productos activos en o por debajo de su stock
// mínimo.
func (uc *ProductUseCase) ListLowStock() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update aplica un patch parcial. El stock actual no se toca aquí: las ventas
// y el ajuste manual son las únicas vías de cambio de stock.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Codigo != nil && *in.Codigo != product.Codigo {
		if existing, _ := uc.repo.GetByCodigo(*in.Codigo); existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.Codigo = *in.Codigo
	}
	if in.CategoriaID != nil && *in.CategoriaID != product.CategoriaID {
		if _, err := uc.categoryRepo.GetByID(*in.CategoriaID); err != nil {
			return nil, domain.ErrNotFound
		}
		product.CategoriaID = *in.CategoriaID
	}
	if in.ProveedorID != nil && *in.ProveedorID != product.ProveedorID {
		if *in.ProveedorID != "" {
			if _, err := uc.supplierRepo.GetByID(*in.ProveedorID); err != nil {
				return nil, domain.ErrNotFound
			}
		}
		product.ProveedorID = *in.ProveedorID
	}
	if in.Nombre != nil {
		product.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		product.Descripcion = *in.Descripcion
	}
	if in.PrecioCompra != nil {
		if in.PrecioCompra.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PrecioCompra = *in.PrecioCompra
	}
	if in.PrecioVenta != nil {
		if in.PrecioVenta.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PrecioVenta = *in.PrecioVenta
	}
	if in.StockMinimo != nil {
		product.StockMinimo = *in.StockMinimo
	}
	if in.FechaVencimiento != nil {
		product.FechaVencimiento = in.FechaVencimiento
	}
	if in.Activo != nil {
		product.Activo = *in.Activo
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdjustStock registra una entrada o salida manual de stock. Una salida mayor
// al stock disponible se rechaza con el stock restante.
func (uc *ProductUseCase) AdjustStock(id string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}
	switch in.Tipo {
	case "entrada":
		if err := uc.repo.IncrementStock(id, in.Cantidad); err != nil {
			return nil, err
		}
	case "salida":
		ok, err := uc.repo.DecrementStock(id, in.Cantidad)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &domain.StockError{ProductName: product.Nombre, Available: product.StockActual}
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete desactiva el producto (soft delete); deja de aparecer en listados y
// no puede venderse, pero las ventas históricas conservan sus líneas.
func (uc *ProductUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.SoftDelete(id)
}

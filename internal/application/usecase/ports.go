package usecase

import (
	"context"

	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn con repositorios de proveedores y productos
// atados a la misma transacción. Si fn devuelve error, nada queda persistido.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
	) error) error
}

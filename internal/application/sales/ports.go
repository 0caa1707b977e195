package sales

import (
	"context"

	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los repos
// de ventas y productos. Si fn retorna error (ej: ErrInsufficientStock), el
// runner hace rollback y nada queda persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

package sales

import (
	"context"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// VoidSaleUseCase anula una venta y repone el stock de sus líneas en una sola
// transacción. Una venta anulada no puede volver a anularse.
type VoidSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewVoidSaleUseCase construye el caso de uso.
func NewVoidSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *VoidSaleUseCase {
	return &VoidSaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// Execute marca la venta como Anulada y devuelve al inventario la cantidad de
// cada línea.
func (uc *VoidSaleUseCase) Execute(ctx context.Context, ventaID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ventaID)
	if err != nil {
		return nil, err
	}
	if sale.Estado == entity.SaleStatusAnulada {
		return nil, domain.ErrSaleAlreadyVoided
	}

	details, err := uc.saleRepo.GetDetails(ventaID)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := saleRepo.UpdateEstado(ventaID, entity.SaleStatusAnulada); err != nil {
			return err
		}
		for _, d := range details {
			if err := productRepo.IncrementStock(d.ProductoID, d.Cantidad); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sale.Estado = entity.SaleStatusAnulada
	return toSaleResponse(sale, details), nil
}

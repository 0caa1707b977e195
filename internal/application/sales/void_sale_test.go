package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misikss/nova-salud-api/internal/application/sales"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
)

func seedVoidableSale(saleRepo *fakeSaleRepo, productRepo *fakeProductRepo) *entity.Sale {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 7)
	productRepo.products[product.ID] = product

	sale := &entity.Sale{
		ID:         "venta-1",
		Fecha:      time.Now(),
		UsuarioID:  testVendedorID,
		MetodoPago: entity.PayEfectivo,
		Estado:     entity.SaleStatusCompletada,
		Subtotal:   decimal.NewFromFloat(16.50),
		Total:      decimal.NewFromFloat(16.50),
	}
	saleRepo.sales[sale.ID] = sale
	saleRepo.details[sale.ID] = []*entity.SaleDetail{
		{
			ID:             "det-1",
			VentaID:        sale.ID,
			ProductoID:     product.ID,
			Cantidad:       3,
			PrecioUnitario: decimal.NewFromFloat(5.50),
			Subtotal:       decimal.NewFromFloat(16.50),
			ProductoNombre: product.Nombre,
		},
	}
	return sale
}

func TestVoidSale_ReponeStockYMarcaAnulada(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	productRepo := newFakeProductRepo()
	seedVoidableSale(saleRepo, productRepo)
	uc := sales.NewVoidSaleUseCase(&fakeTxRunner{saleRepo: saleRepo, productRepo: productRepo}, saleRepo)

	resp, err := uc.Execute(context.Background(), "venta-1")
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusAnulada, resp.Estado)
	assert.Equal(t, entity.SaleStatusAnulada, saleRepo.sales["venta-1"].Estado)
	// El stock vendido (3) vuelve al inventario: 7 + 3 = 10.
	assert.Equal(t, 10, productRepo.products[testProductoID].StockActual)
	// Los totales de la venta no cambian.
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(16.50)))
}

func TestVoidSale_YaAnulada_RetornaError(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	productRepo := newFakeProductRepo()
	sale := seedVoidableSale(saleRepo, productRepo)
	sale.Estado = entity.SaleStatusAnulada
	uc := sales.NewVoidSaleUseCase(&fakeTxRunner{saleRepo: saleRepo, productRepo: productRepo}, saleRepo)

	_, err := uc.Execute(context.Background(), "venta-1")
	assert.ErrorIs(t, err, domain.ErrSaleAlreadyVoided)
	// No se repone stock dos veces.
	assert.Equal(t, 7, productRepo.products[testProductoID].StockActual)
}

func TestVoidSale_NoExiste_RetornaErrNotFound(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	uc := sales.NewVoidSaleUseCase(&fakeTxRunner{saleRepo: saleRepo, productRepo: newFakeProductRepo()}, saleRepo)

	_, err := uc.Execute(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

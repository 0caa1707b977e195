package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/application/sales"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
)

const (
	testVendedorID = "00000000-0000-0000-0000-0000000000aa"
	testProductoID = "00000000-0000-0000-0000-0000000000p1"
)

func newCreateSaleUC(productRepo *fakeProductRepo, customerRepo *fakeCustomerRepo) (*sales.CreateSaleUseCase, *fakeSaleRepo) {
	saleRepo := newFakeSaleRepo()
	tx := &fakeTxRunner{saleRepo: saleRepo, productRepo: productRepo}
	return sales.NewCreateSaleUseCase(tx, saleRepo, productRepo, customerRepo), saleRepo
}

func TestCreateSale_DescuentaStockYRecalculaTotales(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	uc, saleRepo := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	resp, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 3},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// El stock se descuenta dentro de la transacción.
	assert.Equal(t, 7, product.StockActual, "vender 3 de 10 debe dejar 7")

	// Totales calculados por el servidor: 3 x 5.50 = 16.50.
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromFloat(16.50)), "subtotal %s", resp.Subtotal)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(16.50)), "total %s", resp.Total)
	assert.Equal(t, entity.SaleStatusCompletada, resp.Estado)
	assert.Equal(t, testVendedorID, resp.UsuarioID)

	// Cabecera y detalle persistidos.
	require.Len(t, saleRepo.sales, 1)
	require.Len(t, saleRepo.details[resp.ID], 1)
	detalle := saleRepo.details[resp.ID][0]
	assert.Equal(t, 3, detalle.Cantidad)
	assert.True(t, detalle.PrecioUnitario.Equal(decimal.NewFromFloat(5.50)))
	assert.True(t, detalle.Subtotal.Equal(decimal.NewFromFloat(16.50)))
}

func TestCreateSale_TotalManipulado_RetornaErrInvalidInput(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	uc, saleRepo := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	// El cliente manda un total manipulado; 2 x 5.50 = 11.00, no 1.00.
	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayTarjeta,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 2},
		},
		Total: decimal.NewFromFloat(1.00),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, saleRepo.sales, "una venta con total discrepante no se persiste")
	assert.Equal(t, 10, product.StockActual)
}

func TestCreateSale_SubtotalDeLineaManipulado_RetornaErrInvalidInput(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	uc, _ := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayTarjeta,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 2, Subtotal: decimal.NewFromFloat(0.01)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_SubtotalManipulado_RetornaErrInvalidInput(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	uc, _ := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 2},
		},
		Subtotal: decimal.NewFromFloat(9.99),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_TotalesCoincidentes_SeAceptan(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	uc, _ := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	// Totales precalculados por el frontend que coinciden con el recálculo.
	resp, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 2, Subtotal: decimal.NewFromFloat(11.00)},
		},
		Subtotal: decimal.NewFromFloat(11.00),
		Total:    decimal.NewFromFloat(11.00),
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(11.00)), "total %s", resp.Total)
}

func TestCreateSale_PrecioExplicitoDelVendedor(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	uc, _ := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	resp, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 2, PrecioUnitario: decimal.NewFromFloat(4.00)},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(8.00)))
}

func TestCreateSale_ImpuestosYDescuento(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 10.00, 10)
	uc, _ := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	resp, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 2},
		},
		Impuestos: decimal.NewFromFloat(3.60),
		Descuento: decimal.NewFromFloat(5.00),
	})
	require.NoError(t, err)
	// 20.00 + 3.60 - 5.00 = 18.60
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(18.60)), "total %s", resp.Total)
}

func TestCreateSale_SinDetalles_RetornaErrEmptySale(t *testing.T) {
	uc, _ := newCreateSaleUC(newFakeProductRepo(), newFakeCustomerRepo())

	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrEmptySale)
}

func TestCreateSale_StockInsuficiente_NoPersisteNada(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 2)
	uc, saleRepo := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 5},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El error incluye producto y stock disponible.
	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Paracetamol 500mg", stockErr.ProductName)
	assert.Equal(t, 2, stockErr.Available)

	// La validación ocurre antes de la transacción: nada persistido, stock intacto.
	assert.Empty(t, saleRepo.sales)
	assert.Equal(t, 2, product.StockActual)
}

func TestCreateSale_DecrementoConcurrenteFalla_RetornaStockError(t *testing.T) {
	// El stock pasa la validación previa pero el UPDATE condicional no afecta
	// filas (otra venta ganó la carrera).
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	productRepo := newFakeProductRepo(product)
	productRepo.decrementFails = true
	uc, _ := newCreateSaleUC(productRepo, newFakeCustomerRepo())

	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 3},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCreateSale_ProductoInexistente(t *testing.T) {
	uc, _ := newCreateSaleUC(newFakeProductRepo(), newFakeCustomerRepo())

	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: "no-existe", Cantidad: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateSale_ProductoInactivo(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	product.Activo = false
	uc, _ := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	uc, _ := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		ClienteID:  "no-existe",
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_CantidadInvalida(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	uc, _ := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 0},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_TotalNegativo_RetornaErrInvalidInput(t *testing.T) {
	product := testProduct(testProductoID, "MED001", "Paracetamol 500mg", 5.50, 10)
	uc, _ := newCreateSaleUC(newFakeProductRepo(product), newFakeCustomerRepo())

	// Descuento mayor que el subtotal.
	_, err := uc.Execute(context.Background(), testVendedorID, dto.CreateSaleRequest{
		MetodoPago: entity.PayEfectivo,
		Detalles: []dto.SaleDetailRequest{
			{ProductoID: testProductoID, Cantidad: 1},
		},
		Descuento: decimal.NewFromFloat(100.00),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/application/sales"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
)

const otherUserID = "00000000-0000-0000-0000-0000000000bb"

func seedSalesForQuery(saleRepo *fakeSaleRepo) {
	saleRepo.sales["venta-propia"] = &entity.Sale{
		ID:        "venta-propia",
		Fecha:     time.Now(),
		UsuarioID: testVendedorID,
		Estado:    entity.SaleStatusCompletada,
		Total:     decimal.NewFromFloat(10),
	}
	saleRepo.sales["venta-ajena"] = &entity.Sale{
		ID:        "venta-ajena",
		Fecha:     time.Now(),
		UsuarioID: otherUserID,
		Estado:    entity.SaleStatusCompletada,
		Total:     decimal.NewFromFloat(20),
	}
}

func TestSaleQuery_List_VendedorSoloVeSusVentas(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	seedSalesForQuery(saleRepo)
	uc := sales.NewSaleQueryUseCase(saleRepo)

	out, err := uc.List(testVendedorID, entity.RoleVendedor, dto.SaleListFilter{})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "venta-propia", out[0].ID)
	assert.Equal(t, testVendedorID, saleRepo.lastFilter.UsuarioID,
		"el filtro debe forzar el usuario para un vendedor")
}

func TestSaleQuery_List_AdminVeTodas(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	seedSalesForQuery(saleRepo)
	uc := sales.NewSaleQueryUseCase(saleRepo)

	out, err := uc.List("admin-id", entity.RoleAdmin, dto.SaleListFilter{})
	require.NoError(t, err)

	assert.Len(t, out, 2)
	assert.Empty(t, saleRepo.lastFilter.UsuarioID)
}

func TestSaleQuery_List_EstadoInvalido(t *testing.T) {
	uc := sales.NewSaleQueryUseCase(newFakeSaleRepo())

	_, err := uc.List("admin-id", entity.RoleAdmin, dto.SaleListFilter{Estado: "Fantasma"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleQuery_List_RangoDeFechasInclusivo(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	uc := sales.NewSaleQueryUseCase(saleRepo)

	_, err := uc.List("admin-id", entity.RoleAdmin, dto.SaleListFilter{
		Desde: "2026-08-01",
		Hasta: "2026-08-15",
	})
	require.NoError(t, err)

	require.NotNil(t, saleRepo.lastFilter.Desde)
	require.NotNil(t, saleRepo.lastFilter.Hasta)
	assert.Equal(t, 1, saleRepo.lastFilter.Desde.Day())
	// Hasta cubre el día completo, no la medianoche inicial.
	assert.Equal(t, 15, saleRepo.lastFilter.Hasta.Day())
	assert.Equal(t, 23, saleRepo.lastFilter.Hasta.Hour())
}

func TestSaleQuery_List_FechaMalFormada(t *testing.T) {
	uc := sales.NewSaleQueryUseCase(newFakeSaleRepo())

	_, err := uc.List("admin-id", entity.RoleAdmin, dto.SaleListFilter{Desde: "15/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleQuery_GetByID_VendedorNoAccedeVentaAjena(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	seedSalesForQuery(saleRepo)
	uc := sales.NewSaleQueryUseCase(saleRepo)

	_, err := uc.GetByID(testVendedorID, entity.RoleVendedor, "venta-ajena")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSaleQuery_GetByID_AdminAccedeACualquiera(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	seedSalesForQuery(saleRepo)
	uc := sales.NewSaleQueryUseCase(saleRepo)

	resp, err := uc.GetByID("admin-id", entity.RoleAdmin, "venta-ajena")
	require.NoError(t, err)
	assert.Equal(t, "venta-ajena", resp.ID)
}

func TestSaleQuery_GetByID_NoExiste(t *testing.T) {
	uc := sales.NewSaleQueryUseCase(newFakeSaleRepo())

	_, err := uc.GetByID("admin-id", entity.RoleAdmin, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleQuery_GetForReceipt_MismaReglaDeAcceso(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	seedSalesForQuery(saleRepo)
	uc := sales.NewSaleQueryUseCase(saleRepo)

	_, _, err := uc.GetForReceipt(testVendedorID, entity.RoleVendedor, "venta-ajena")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	sale, _, err := uc.GetForReceipt(testVendedorID, entity.RoleVendedor, "venta-propia")
	require.NoError(t, err)
	assert.Equal(t, "venta-propia", sale.ID)
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/application/usecase"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
)

func newSupplierUC(repo *fakeSupplierRepo, productRepo *fakeProductRepo) (*usecase.SupplierUseCase, *fakeCatalogTxRunner) {
	tx := &fakeCatalogTxRunner{supplierRepo: repo, productRepo: productRepo}
	return usecase.NewSupplierUseCase(repo, tx), tx
}

func TestSupplier_Create(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc, _ := newSupplierUC(repo, newFakeProductRepo())

	resp, err := uc.Create(dto.CreateSupplierRequest{
		Nombre:   "Droguería Andina",
		Contacto: "Carlos Ruiz",
		Telefono: "014567890",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Droguería Andina", resp.Nombre)
}

func TestSupplier_Delete_DesvinculaProductos(t *testing.T) {
	supplier := &entity.Supplier{ID: "prov-1", Nombre: "Droguería Andina"}
	repo := newFakeSupplierRepo(supplier)

	product := testProducto("prod-1", "MED001", "cat-1", 10)
	product.ProveedorID = "prov-1"
	productRepo := newFakeProductRepo(product)

	uc, tx := newSupplierUC(repo, productRepo)

	require.NoError(t, uc.Delete(context.Background(), "prov-1"))
	// Hard delete del proveedor y los productos quedan sin referencia, ambos
	// dentro de la misma transacción.
	assert.Empty(t, repo.suppliers)
	assert.Empty(t, product.ProveedorID)
	assert.Equal(t, 1, tx.runs, "desvincular y borrar deben correr en una transacción")
}

func TestSupplier_Delete_NoExiste(t *testing.T) {
	uc, tx := newSupplierUC(newFakeSupplierRepo(), newFakeProductRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, tx.runs)
}

func TestSupplier_Update_PatchParcial(t *testing.T) {
	supplier := &entity.Supplier{ID: "prov-1", Nombre: "Droguería Andina", Telefono: "014567890"}
	uc, _ := newSupplierUC(newFakeSupplierRepo(supplier), newFakeProductRepo())

	telefono := "019998887"
	resp, err := uc.Update("prov-1", dto.UpdateSupplierRequest{Telefono: &telefono})
	require.NoError(t, err)

	assert.Equal(t, "019998887", resp.Telefono)
	assert.Equal(t, "Droguería Andina", resp.Nombre)
}

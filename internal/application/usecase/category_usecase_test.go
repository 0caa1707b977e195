package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/application/usecase"
	"github.com/misikss/nova-salud-api/internal/domain"
)

func TestCategory_Create(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	resp, err := uc.Create(dto.CreateCategoryRequest{Nombre: "Analgésicos", Descripcion: "Alivio del dolor"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Analgésicos", resp.Nombre)
	assert.True(t, resp.Activo)
}

func TestCategory_Create_NombreDuplicado(t *testing.T) {
	repo := newFakeCategoryRepo(testCategoria("cat-1", "Analgésicos"))
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CreateCategoryRequest{Nombre: "Analgésicos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategory_Update_RenombrarVerificaUnicidad(t *testing.T) {
	repo := newFakeCategoryRepo(
		testCategoria("cat-1", "Analgésicos"),
		testCategoria("cat-2", "Antibióticos"),
	)
	uc := usecase.NewCategoryUseCase(repo)

	nombre := "Antibióticos"
	_, err := uc.Update("cat-1", dto.UpdateCategoryRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	nombre = "Antiinflamatorios"
	resp, err := uc.Update("cat-1", dto.UpdateCategoryRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Antiinflamatorios", resp.Nombre)
}

func TestCategory_Delete_ConProductosActivos_Rechazada(t *testing.T) {
	repo := newFakeCategoryRepo(testCategoria("cat-1", "Analgésicos"))
	repo.activeProducts["cat-1"] = 3
	uc := usecase.NewCategoryUseCase(repo)

	err := uc.Delete("cat-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, repo.categories["cat-1"].Activo, "la categoría sigue activa")
}

func TestCategory_Delete_SinProductos_Desactiva(t *testing.T) {
	repo := newFakeCategoryRepo(testCategoria("cat-1", "Analgésicos"))
	uc := usecase.NewCategoryUseCase(repo)

	require.NoError(t, uc.Delete("cat-1"))
	assert.False(t, repo.categories["cat-1"].Activo)
}

func TestCategory_List_ExcluyeInactivasPorDefecto(t *testing.T) {
	inactiva := testCategoria("cat-2", "Descontinuados")
	inactiva.Activo = false
	repo := newFakeCategoryRepo(testCategoria("cat-1", "Analgésicos"), inactiva)
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.List(false)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = uc.List(true)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

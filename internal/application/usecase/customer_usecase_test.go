package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/application/usecase"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
)

func testCliente(id, documento, tipo string) *entity.Customer {
	return &entity.Customer{
		ID:            id,
		Nombre:        "María",
		Apellido:      "Quispe",
		Documento:     documento,
		TipoDocumento: tipo,
	}
}

func TestCustomer_Create(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	resp, err := uc.Create(dto.CreateCustomerRequest{
		Nombre:        "María",
		Apellido:      "Quispe",
		Documento:     "45871236",
		TipoDocumento: entity.DocDNI,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.DocDNI, resp.TipoDocumento)
}

func TestCustomer_Create_DocumentoDuplicado(t *testing.T) {
	repo := newFakeCustomerRepo(testCliente("cli-1", "45871236", entity.DocDNI))
	uc := usecase.NewCustomerUseCase(repo)

	_, err := uc.Create(dto.CreateCustomerRequest{
		Nombre:        "Otro",
		Apellido:      "Cliente",
		Documento:     "45871236",
		TipoDocumento: entity.DocDNI,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomer_Create_MismoDocumentoDistintoTipo_Permitido(t *testing.T) {
	// La unicidad es sobre el par (documento, tipo_documento).
	repo := newFakeCustomerRepo(testCliente("cli-1", "45871236", entity.DocDNI))
	uc := usecase.NewCustomerUseCase(repo)

	_, err := uc.Create(dto.CreateCustomerRequest{
		Nombre:        "Empresa",
		Apellido:      "SAC",
		Documento:     "45871236",
		TipoDocumento: entity.DocCE,
	})
	assert.NoError(t, err)
}

func TestCustomer_List_ConTerminoNormalizaLaBusqueda(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	_, err := uc.List("  MARÍA PÉREZ ")
	require.NoError(t, err)
	assert.Equal(t, "maria perez", repo.lastSearch,
		"el término debe llegar al repo en minúsculas y sin tildes")
}

func TestCustomer_Update_CambiarDocumentoVerificaUnicidad(t *testing.T) {
	repo := newFakeCustomerRepo(
		testCliente("cli-1", "45871236", entity.DocDNI),
		testCliente("cli-2", "78912345", entity.DocDNI),
	)
	uc := usecase.NewCustomerUseCase(repo)

	doc := "78912345"
	_, err := uc.Update("cli-1", dto.UpdateCustomerRequest{Documento: &doc})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomer_Update_MismoDocumentoPropio_NoEsDuplicado(t *testing.T) {
	repo := newFakeCustomerRepo(testCliente("cli-1", "45871236", entity.DocDNI))
	uc := usecase.NewCustomerUseCase(repo)

	// Cambia solo el tipo manteniendo el número; el par resultante no choca
	// con ningún otro cliente.
	tipo := entity.DocCE
	resp, err := uc.Update("cli-1", dto.UpdateCustomerRequest{TipoDocumento: &tipo})
	require.NoError(t, err)
	assert.Equal(t, entity.DocCE, resp.TipoDocumento)
}

func TestCustomer_Delete_ConVentas_Rechazado(t *testing.T) {
	repo := newFakeCustomerRepo(testCliente("cli-1", "45871236", entity.DocDNI))
	repo.salesCount["cli-1"] = 2
	uc := usecase.NewCustomerUseCase(repo)

	err := uc.Delete("cli-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, repo.customers, 1, "el cliente no se borra")
}

func TestCustomer_Delete_SinVentas(t *testing.T) {
	repo := newFakeCustomerRepo(testCliente("cli-1", "45871236", entity.DocDNI))
	uc := usecase.NewCustomerUseCase(repo)

	require.NoError(t, uc.Delete("cli-1"))
	assert.Empty(t, repo.customers)
}

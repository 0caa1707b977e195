package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
	"github.com/misikss/nova-salud-api/internal/search"
)

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Apellido:      c.Apellido,
		Documento:     c.Documento,
		TipoDocumento: c.TipoDocumento,
		Telefono:      c.Telefono,
		Email:         c.Email,
		Direccion:     c.Direccion,
		FechaRegistro: c.FechaRegistro,
	}
}

// Create da de alta un cliente. El par (documento, tipo_documento) es único.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if existing, _ := uc.repo.GetByDocumento(in.Documento, in.TipoDocumento); existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Documento:     in.Documento,
		TipoDocumento: in.TipoDocumento,
		Telefono:      in.Telefono,
		Email:         in.Email,
		Direccion:     in.Direccion,
		FechaRegistro: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID devuelve el cliente indicado.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List devuelve los clientes; con término busca por nombre, apellido o
// documento sin distinguir mayúsculas ni tildes.
func (uc *CustomerUseCase) List(termino string) ([]*dto.CustomerResponse, error) {
	var customers []*entity.Customer
	var err error
	if termino != "" {
		customers, err = uc.repo.Search(search.Fold(termino))
	} else {
		customers, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update aplica un patch parcial; cambiar el documento verifica unicidad del
// par (documento, tipo_documento) resultante.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	doc := customer.Documento
	tipo := customer.TipoDocumento
	if in.Documento != nil {
		doc = *in.Documento
	}
	if in.TipoDocumento != nil {
		tipo = *in.TipoDocumento
	}
	if doc != customer.Documento || tipo != customer.TipoDocumento {
		if existing, _ := uc.repo.GetByDocumento(doc, tipo); existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		customer.Documento = doc
		customer.TipoDocumento = tipo
	}
	if in.Nombre != nil {
		customer.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		customer.Apellido = *in.Apellido
	}
	if in.Telefono != nil {
		customer.Telefono = *in.Telefono
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Direccion != nil {
		customer.Direccion = *in.Direccion
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina el cliente. Se rechaza con ErrConflict si tiene ventas
// registradas; el historial de ventas no pierde su referencia.
func (uc *CustomerUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return domain.ErrNotFound
	}
	count, err := uc.repo.CountSales(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

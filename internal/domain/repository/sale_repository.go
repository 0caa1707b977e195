package repository

import (
	"time"

	"github.com/misikss/nova-salud-api/internal/domain/entity"
)

// SaleFilter criterios de listado para ventas.
// UsuarioID distinto de vacío restringe a las ventas emitidas por ese usuario
// (control de acceso para vendedores).
type SaleFilter struct {
	Desde     *time.Time
	Hasta     *time.Time
	Estado    string
	UsuarioID string
}

// SaleRepository define el puerto de persistencia para Sale y sus detalles.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	// GetByID devuelve la cabecera con nombres de cliente y usuario.
	GetByID(id string) (*entity.Sale, error)
	// GetDetails devuelve las líneas con código y nombre del producto.
	GetDetails(ventaID string) ([]*entity.SaleDetail, error)
	List(filter SaleFilter) ([]*entity.Sale, error)
	UpdateEstado(id, estado string) error
}

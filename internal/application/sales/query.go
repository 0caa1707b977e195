package sales

import (
	"time"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// SaleQueryUseCase lecturas de ventas con control de acceso por rol:
// un vendedor solo ve sus propias ventas, un administrador ve todas.
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// List devuelve las ventas que casan con el filtro, restringidas al usuario
// cuando el rol no es administrador. Las fechas llegan como YYYY-MM-DD.
func (uc *SaleQueryUseCase) List(usuarioID, rol string, in dto.SaleListFilter) ([]*dto.SaleResponse, error) {
	filter := repository.SaleFilter{Estado: in.Estado}
	if in.Estado != "" && in.Estado != entity.SaleStatusCompletada &&
		in.Estado != entity.SaleStatusAnulada && in.Estado != entity.SaleStatusPendiente {
		return nil, domain.ErrInvalidInput
	}
	if in.Desde != "" {
		desde, err := time.Parse("2006-01-02", in.Desde)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.Desde = &desde
	}
	if in.Hasta != "" {
		hasta, err := time.Parse("2006-01-02", in.Hasta)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Inclusivo: el filtro cubre hasta el final del día indicado.
		fin := hasta.Add(24*time.Hour - time.Nanosecond)
		filter.Hasta = &fin
	}
	if rol != entity.RoleAdmin {
		filter.UsuarioID = usuarioID
	}

	ventas, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, toSaleResponse(v, nil))
	}
	return out, nil
}

// GetByID devuelve la venta con sus detalles. Un vendedor solo puede ver las
// ventas que él mismo emitió.
func (uc *SaleQueryUseCase) GetByID(usuarioID, rol, ventaID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ventaID)
	if err != nil {
		return nil, err
	}
	if rol != entity.RoleAdmin && sale.UsuarioID != usuarioID {
		return nil, domain.ErrForbidden
	}
	details, err := uc.saleRepo.GetDetails(ventaID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, details), nil
}

// GetForReceipt devuelve cabecera y detalles como entidades, con la misma
// regla de acceso que GetByID. Lo usa la generación del comprobante PDF.
func (uc *SaleQueryUseCase) GetForReceipt(usuarioID, rol, ventaID string) (*entity.Sale, []*entity.SaleDetail, error) {
	sale, err := uc.saleRepo.GetByID(ventaID)
	if err != nil {
		return nil, nil, err
	}
	if rol != entity.RoleAdmin && sale.UsuarioID != usuarioID {
		return nil, nil, domain.ErrForbidden
	}
	details, err := uc.saleRepo.GetDetails(ventaID)
	if err != nil {
		return nil, nil, err
	}
	return sale, details, nil
}

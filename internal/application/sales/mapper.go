package sales

import (
	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
)

func toDetailResponse(d *entity.SaleDetail) dto.SaleDetailResponse {
	return dto.SaleDetailResponse{
		ID:             d.ID,
		ProductoID:     d.ProductoID,
		ProductoCodigo: d.ProductoCodigo,
		ProductoNombre: d.ProductoNombre,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		Subtotal:       d.Subtotal,
	}
}

func toSaleResponse(s *entity.Sale, details []*entity.SaleDetail) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		Fecha:         s.Fecha,
		ClienteID:     s.ClienteID,
		ClienteNombre: s.ClienteNombre,
		UsuarioID:     s.UsuarioID,
		UsuarioNombre: s.UsuarioNombre,
		MetodoPago:    s.MetodoPago,
		Estado:        s.Estado,
		Subtotal:      s.Subtotal,
		Impuestos:     s.Impuestos,
		Descuento:     s.Descuento,
		Total:         s.Total,
	}
	for _, d := range details {
		resp.Detalles = append(resp.Detalles, toDetailResponse(d))
	}
	return resp
}

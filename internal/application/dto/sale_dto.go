package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDetailRequest línea de venta enviada por el cliente.
type SaleDetailRequest struct {
	ProductoID     string          `json:"id_producto" validate:"required"`
	Cantidad       int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// CreateSaleRequest cuerpo de POST /ventas. Los totales llegan precalculados
// por el frontend; el caso de uso los recalcula y rechaza discrepancias.
type CreateSaleRequest struct {
	ClienteID  string              `json:"id_cliente"`
	MetodoPago string              `json:"metodo_pago" validate:"required,oneof=Efectivo Tarjeta Transferencia Otro"`
	Detalles   []SaleDetailRequest `json:"detalles"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Impuestos  decimal.Decimal     `json:"impuestos"`
	Descuento  decimal.Decimal     `json:"descuento"`
	Total      decimal.Decimal     `json:"total"`
}

// SaleDetailResponse línea de venta serializada con resumen del producto.
type SaleDetailResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"id_producto"`
	ProductoCodigo string          `json:"codigo_producto"`
	ProductoNombre string          `json:"nombre_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta serializada con cliente, usuario emisor y detalles.
type SaleResponse struct {
	ID            string               `json:"id"`
	Fecha         time.Time            `json:"fecha"`
	ClienteID     string               `json:"id_cliente,omitempty"`
	ClienteNombre string               `json:"cliente,omitempty"`
	UsuarioID     string               `json:"id_usuario"`
	UsuarioNombre string               `json:"usuario"`
	MetodoPago    string               `json:"metodo_pago"`
	Estado        string               `json:"estado"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Impuestos     decimal.Decimal      `json:"impuestos"`
	Descuento     decimal.Decimal      `json:"descuento"`
	Total         decimal.Decimal      `json:"total"`
	Detalles      []SaleDetailResponse `json:"detalles,omitempty"`
}

// SaleListFilter filtros de GET /ventas (query params).
type SaleListFilter struct {
	Desde  string `query:"desde"`
	Hasta  string `query:"hasta"`
	Estado string `query:"estado"`
}

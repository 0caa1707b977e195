package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse producto serializado con nombres de categoría y proveedor.
type ProductResponse struct {
	ID               string          `json:"id"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      string          `json:"id_categoria"`
	CategoriaNombre  string          `json:"categoria"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	StockActual      int             `json:"stock_actual"`
	StockMinimo      int             `json:"stock_minimo"`
	ProveedorID      string          `json:"id_proveedor,omitempty"`
	ProveedorNombre  string          `json:"proveedor,omitempty"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento,omitempty"`
	Activo           bool            `json:"activo"`
}

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Codigo           string          `json:"codigo" validate:"required"`
	Nombre           string          `json:"nombre" validate:"required"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      string          `json:"id_categoria" validate:"required"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	StockActual      int             `json:"stock_actual" validate:"min=0"`
	StockMinimo      int             `json:"stock_minimo" validate:"min=0"`
	ProveedorID      string          `json:"id_proveedor"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento"`
}

// UpdateProductRequest patch de producto: solo los campos presentes se aplican.
// El stock actual no se toca aquí; usar el ajuste de stock.
type UpdateProductRequest struct {
	Codigo           *string          `json:"codigo,omitempty"`
	Nombre           *string          `json:"nombre,omitempty"`
	Descripcion      *string          `json:"descripcion,omitempty"`
	CategoriaID      *string          `json:"id_categoria,omitempty"`
	PrecioCompra     *decimal.Decimal `json:"precio_compra,omitempty"`
	PrecioVenta      *decimal.Decimal `json:"precio_venta,omitempty"`
	StockMinimo      *int             `json:"stock_minimo,omitempty" validate:"omitempty,min=0"`
	ProveedorID      *string          `json:"id_proveedor,omitempty"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento,omitempty"`
	Activo           *bool            `json:"activo,omitempty"`
}

// AdjustStockRequest entrada o salida manual de stock.
type AdjustStockRequest struct {
	Cantidad int    `json:"cantidad" validate:"required,gt=0"`
	Tipo     string `json:"tipo" validate:"required,oneof=entrada salida"`
}

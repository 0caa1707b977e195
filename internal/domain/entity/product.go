package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la farmacia.
// StockActual nunca baja de cero: el decremento en ventas es condicional
// a nivel SQL y la tabla lleva un CHECK de respaldo.
type Product struct {
	ID               string
	Codigo           string // único
	Nombre           string
	Descripcion      string
	CategoriaID      string
	PrecioCompra     decimal.Decimal
	PrecioVenta      decimal.Decimal
	StockActual      int
	StockMinimo      int
	ProveedorID      string     // vacío si no tiene proveedor asignado
	FechaVencimiento *time.Time // nil si no aplica
	Activo           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Nombres de las entidades relacionadas, poblados en listados con JOIN.
	CategoriaNombre string
	ProveedorNombre string
}

// LowStock indica si el producto está en o por debajo de su stock mínimo.
func (p *Product) LowStock() bool {
	return p.StockActual <= p.StockMinimo
}

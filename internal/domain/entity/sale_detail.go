package entity

import "github.com/shopspring/decimal"

// SaleDetail representa una línea de detalle de una venta.
// Invariante: Subtotal = Cantidad × PrecioUnitario.
type SaleDetail struct {
	ID             string
	VentaID        string
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal

	// Resumen del producto, poblado con JOIN en lecturas.
	ProductoCodigo string
	ProductoNombre string
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. El ciclo es Pendiente → Completada → Anulada;
// Anulada es terminal.
const (
	SaleStatusCompletada = "Completada"
	SaleStatusAnulada    = "Anulada"
	SaleStatusPendiente  = "Pendiente"
)

// Métodos de pago aceptados.
const (
	PayEfectivo      = "Efectivo"
	PayTarjeta       = "Tarjeta"
	PayTransferencia = "Transferencia"
	PayOtro          = "Otro"
)

// PaymentMethods lista los métodos válidos.
var PaymentMethods = []string{PayEfectivo, PayTarjeta, PayTransferencia, PayOtro}

// Sale representa la cabecera de una venta.
// Invariante: Total = Subtotal + Impuestos - Descuento (verificado en el
// caso de uso al crear, no por la base de datos).
type Sale struct {
	ID         string
	Fecha      time.Time
	ClienteID  string // vacío para venta sin cliente registrado
	UsuarioID  string // usuario que emite la venta
	MetodoPago string
	Estado     string
	Subtotal   decimal.Decimal
	Impuestos  decimal.Decimal
	Descuento  decimal.Decimal
	Total      decimal.Decimal

	// Datos de las entidades relacionadas, poblados con JOIN en lecturas.
	ClienteNombre string
	UsuarioNombre string
	Detalles      []*SaleDetail
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotals total acumulado de ventas completadas en un rango.
type SalesTotals struct {
	Cantidad int
	Monto    decimal.Decimal
}

// MonthlyTotal total vendido en un mes calendario.
type MonthlyTotal struct {
	Anio  int
	Mes   int // 1..12
	Total decimal.Decimal
}

// UserSalesRow ventas agregadas por vendedor (reporte diario).
type UserSalesRow struct {
	UsuarioID string
	Nombre    string
	Apellido  string
	Cantidad  int
	Monto     decimal.Decimal
}

// DaySalesRow ventas agregadas por día del mes (reporte mensual).
type DaySalesRow struct {
	Dia      int
	Cantidad int
	Monto    decimal.Decimal
}

// TopProductRow producto agregado por cantidad vendida.
type TopProductRow struct {
	ProductoID   string
	Codigo       string
	Nombre       string
	TotalVendido int
	MontoTotal   decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
// Todas las agregaciones consideran únicamente ventas Completadas.
type ReportRepository interface {
	TotalSales(ctx context.Context) (*SalesTotals, error)
	TotalsBetween(ctx context.Context, desde, hasta time.Time) (*SalesTotals, error)
	CountCustomers(ctx context.Context) (int, error)
	CountActiveProducts(ctx context.Context) (int, error)
	// MonthlySales agrupa por mes calendario desde la fecha indicada, en orden
	// cronológico.
	MonthlySales(ctx context.Context, desde time.Time) ([]MonthlyTotal, error)
	SalesByUser(ctx context.Context, desde, hasta time.Time) ([]UserSalesRow, error)
	SalesByDay(ctx context.Context, desde, hasta time.Time) ([]DaySalesRow, error)
	TopProducts(ctx context.Context, desde, hasta *time.Time, limite int) ([]TopProductRow, error)
}

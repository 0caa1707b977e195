package dto

import "github.com/shopspring/decimal"

// SalesTotalsDTO total acumulado de ventas completadas.
type SalesTotalsDTO struct {
	Cantidad int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// CountDTO respuesta de conteo simple.
type CountDTO struct {
	Total int `json:"total"`
}

// MonthlySalesDTO total vendido en un mes, con el nombre del mes en español.
type MonthlySalesDTO struct {
	Mes   string          `json:"mes"`
	Anio  int             `json:"anio"`
	Total decimal.Decimal `json:"total"`
}

// TopProductDTO producto agregado por cantidad vendida.
type TopProductDTO struct {
	ProductoID   string          `json:"id_producto"`
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	TotalVendido int             `json:"total_vendido"`
	MontoTotal   decimal.Decimal `json:"monto_total"`
}

// DashboardSummaryDTO contadores principales del dashboard.
type DashboardSummaryDTO struct {
	Ventas    SalesTotalsDTO `json:"ventas"`
	Clientes  int            `json:"clientes"`
	Productos int            `json:"productos"`
}

// UserSalesDTO ventas de un vendedor en el reporte diario.
type UserSalesDTO struct {
	Usuario  string          `json:"usuario"`
	Cantidad int             `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

// DailyReportDTO reporte de ventas de un día.
type DailyReportDTO struct {
	Fecha       string          `json:"fecha"`
	TotalVentas int             `json:"totalVentas"`
	MontoTotal  decimal.Decimal `json:"montoTotal"`
	PorUsuario  []UserSalesDTO  `json:"ventasPorUsuario"`
}

// DaySalesDTO ventas de un día dentro del reporte mensual.
type DaySalesDTO struct {
	Dia      int             `json:"dia"`
	Cantidad int             `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

// MonthlyReportDTO reporte de ventas de un mes.
type MonthlyReportDTO struct {
	Mes         int             `json:"mes"`
	Anio        int             `json:"anio"`
	TotalVentas int             `json:"totalVentas"`
	MontoTotal  decimal.Decimal `json:"montoTotal"`
	PorDia      []DaySalesDTO   `json:"ventasPorDia"`
}

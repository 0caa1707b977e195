package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// Meses para los widgets del dashboard.
const (
	trailingMonths = 6
	dashboardTopN  = 5
)

// monthNames nombres de mes en español, indexados 1..12.
var monthNames = [13]string{"",
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName devuelve el nombre en español del mes 1..12.
func MonthName(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return monthNames[mes]
}

// DashboardUseCase consultas agregadas de solo lectura para el dashboard.
type DashboardUseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, productRepo: productRepo}
}

// Total total histórico de ventas completadas (cantidad y monto).
func (uc *DashboardUseCase) Total(ctx context.Context) (*dto.SalesTotalsDTO, error) {
	totals, err := uc.reportRepo.TotalSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: total ventas: %w", err)
	}
	return &dto.SalesTotalsDTO{Cantidad: totals.Cantidad, Total: totals.Monto}, nil
}

// Customers cantidad de clientes registrados.
func (uc *DashboardUseCase) Customers(ctx context.Context) (*dto.CountDTO, error) {
	count, err := uc.reportRepo.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", err)
	}
	return &dto.CountDTO{Total: count}, nil
}

// Products cantidad de productos activos.
func (uc *DashboardUseCase) Products(ctx context.Context) (*dto.CountDTO, error) {
	count, err := uc.reportRepo.CountActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", err)
	}
	return &dto.CountDTO{Total: count}, nil
}

// Monthly ventas de los últimos seis meses calendario en orden cronológico,
// con el nombre del mes en español. Los meses sin ventas no aparecen.
func (uc *DashboardUseCase) Monthly(ctx context.Context) ([]dto.MonthlySalesDTO, error) {
	now := time.Now()
	desde := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(trailingMonths - 1), 0)
	rows, err := uc.reportRepo.MonthlySales(ctx, desde)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas mensuales: %w", err)
	}
	out := make([]dto.MonthlySalesDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.MonthlySalesDTO{
			Mes:   MonthName(row.Mes),
			Anio:  row.Anio,
			Total: row.Total,
		})
	}
	return out, nil
}

// TopProducts los cinco productos más vendidos. El widget es tolerante:
// si la consulta falla devuelve lista vacía en lugar de error, el resto del
// dashboard no se cae por él.
func (uc *DashboardUseCase) TopProducts(ctx context.Context) []dto.TopProductDTO {
	rows, err := uc.reportRepo.TopProducts(ctx, nil, nil, dashboardTopN)
	if err != nil {
		log.Warn().Err(err).Msg("dashboard: productos más vendidos no disponible")
		return []dto.TopProductDTO{}
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.TopProductDTO{
			ProductoID:   row.ProductoID,
			Codigo:       row.Codigo,
			Nombre:       row.Nombre,
			TotalVendido: row.TotalVendido,
			MontoTotal:   row.MontoTotal,
		})
	}
	return out
}

// LowStock productos activos en o por debajo de su stock mínimo.
func (uc *DashboardUseCase) LowStock() ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", err)
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, &dto.ProductResponse{
			ID:               p.ID,
			Codigo:           p.Codigo,
			Nombre:           p.Nombre,
			Descripcion:      p.Descripcion,
			CategoriaID:      p.CategoriaID,
			CategoriaNombre:  p.CategoriaNombre,
			PrecioCompra:     p.PrecioCompra,
			PrecioVenta:      p.PrecioVenta,
			StockActual:      p.StockActual,
			StockMinimo:      p.StockMinimo,
			ProveedorID:      p.ProveedorID,
			ProveedorNombre:  p.ProveedorNombre,
			FechaVencimiento: p.FechaVencimiento,
			Activo:           p.Activo,
		})
	}
	return out, nil
}

// Summary agrega los contadores del dashboard en una sola respuesta.
// Las tres consultas son independientes y se lanzan en paralelo.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type totalsResult struct {
		totals *dto.SalesTotalsDTO
		err    error
	}
	type countResult struct {
		count *dto.CountDTO
		err   error
	}

	ventasCh := make(chan totalsResult, 1)
	clientesCh := make(chan countResult, 1)
	productosCh := make(chan countResult, 1)

	go func() {
		totals, err := uc.Total(ctx)
		ventasCh <- totalsResult{totals, err}
	}()
	go func() {
		count, err := uc.Customers(ctx)
		clientesCh <- countResult{count, err}
	}()
	go func() {
		count, err := uc.Products(ctx)
		productosCh <- countResult{count, err}
	}()

	ventas := <-ventasCh
	clientes := <-clientesCh
	productos := <-productosCh

	if ventas.err != nil {
		return nil, ventas.err
	}
	if clientes.err != nil {
		return nil, clientes.err
	}
	if productos.err != nil {
		return nil, productos.err
	}

	return &dto.DashboardSummaryDTO{
		Ventas:    *ventas.totals,
		Clientes:  clientes.count.Total,
		Productos: productos.count.Total,
	}, nil
}

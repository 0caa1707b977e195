package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de ventas y dashboard.
// Todas las agregaciones consideran únicamente ventas en estado Completada.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// TotalSales devuelve cantidad y monto acumulado de todas las ventas completadas.
func (r *ReportRepo) TotalSales(ctx context.Context) (*repository.SalesTotals, error) {
	const query = `
		SELECT COUNT(id), COALESCE(SUM(total), 0)
		FROM ventas
		WHERE estado = $1`
	var t repository.SalesTotals
	err := r.pool.QueryRow(ctx, query, entity.SaleStatusCompletada).Scan(&t.Cantidad, &t.Monto)
	if err != nil {
		return nil, fmt.Errorf("reportes.TotalSales: %w", err)
	}
	return &t, nil
}

// TotalsBetween devuelve cantidad y monto de ventas completadas en un rango.
func (r *ReportRepo) TotalsBetween(ctx context.Context, desde, hasta time.Time) (*repository.SalesTotals, error) {
	const query = `
		SELECT COUNT(id), COALESCE(SUM(total), 0)
		FROM ventas
		WHERE estado = $1 AND fecha BETWEEN $2 AND $3`
	var t repository.SalesTotals
	err := r.pool.QueryRow(ctx, query, entity.SaleStatusCompletada, desde, hasta).Scan(&t.Cantidad, &t.Monto)
	if err != nil {
		return nil, fmt.Errorf("reportes.TotalsBetween: %w", err)
	}
	return &t, nil
}

// CountCustomers cuenta todos los clientes registrados.
func (r *ReportRepo) CountCustomers(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clientes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("reportes.CountCustomers: %w", err)
	}
	return count, nil
}

// CountActiveProducts cuenta los productos activos del catálogo.
func (r *ReportRepo) CountActiveProducts(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM productos WHERE activo = true`).Scan(&count); err != nil {
		return 0, fmt.Errorf("reportes.CountActiveProducts: %w", err)
	}
	return count, nil
}

// MonthlySales agrupa el total vendido por mes calendario desde la fecha
// indicada, en orden cronológico.
func (r *ReportRepo) MonthlySales(ctx context.Context, desde time.Time) ([]repository.MonthlyTotal, error) {
	const query = `
		SELECT EXTRACT(YEAR FROM fecha)::int, EXTRACT(MONTH FROM fecha)::int, COALESCE(SUM(total), 0)
		FROM ventas
		WHERE estado = $1 AND fecha >= $2
		GROUP BY 1, 2
		ORDER BY 1 ASC, 2 ASC`
	rows, err := r.pool.Query(ctx, query, entity.SaleStatusCompletada, desde)
	if err != nil {
		return nil, fmt.Errorf("reportes.MonthlySales: %w", err)
	}
	defer rows.Close()
	var results []repository.MonthlyTotal
	for rows.Next() {
		var row repository.MonthlyTotal
		if err := rows.Scan(&row.Anio, &row.Mes, &row.Total); err != nil {
			return nil, fmt.Errorf("reportes.MonthlySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesByUser agrega ventas completadas por vendedor en un rango (reporte diario).
func (r *ReportRepo) SalesByUser(ctx context.Context, desde, hasta time.Time) ([]repository.UserSalesRow, error) {
	const query = `
		SELECT u.id, u.nombre, u.apellido, COUNT(v.id), COALESCE(SUM(v.total), 0)
		FROM ventas v
		JOIN usuarios u ON u.id = v.id_usuario
		WHERE v.estado = $1 AND v.fecha BETWEEN $2 AND $3
		GROUP BY u.id, u.nombre, u.apellido
		ORDER BY COALESCE(SUM(v.total), 0) DESC`
	rows, err := r.pool.Query(ctx, query, entity.SaleStatusCompletada, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reportes.SalesByUser: %w", err)
	}
	defer rows.Close()
	var results []repository.UserSalesRow
	for rows.Next() {
		var row repository.UserSalesRow
		if err := rows.Scan(&row.UsuarioID, &row.Nombre, &row.Apellido, &row.Cantidad, &row.Monto); err != nil {
			return nil, fmt.Errorf("reportes.SalesByUser scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesByDay agrega ventas completadas por día del mes (reporte mensual).
func (r *ReportRepo) SalesByDay(ctx context.Context, desde, hasta time.Time) ([]repository.DaySalesRow, error) {
	const query = `
		SELECT EXTRACT(DAY FROM fecha)::int, COUNT(id), COALESCE(SUM(total), 0)
		FROM ventas
		WHERE estado = $1 AND fecha BETWEEN $2 AND $3
		GROUP BY 1
		ORDER BY 1 ASC`
	rows, err := r.pool.Query(ctx, query, entity.SaleStatusCompletada, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reportes.SalesByDay: %w", err)
	}
	defer rows.Close()
	var results []repository.DaySalesRow
	for rows.Next() {
		var row repository.DaySalesRow
		if err := rows.Scan(&row.Dia, &row.Cantidad, &row.Monto); err != nil {
			return nil, fmt.Errorf("reportes.SalesByDay scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopProducts agrega líneas de venta por producto, de mayor a menor cantidad
// vendida. Los rangos de fecha son opcionales.
func (r *ReportRepo) TopProducts(ctx context.Context, desde, hasta *time.Time, limite int) ([]repository.TopProductRow, error) {
	query := `
		SELECT d.id_producto, p.codigo, p.nombre, SUM(d.cantidad)::int, COALESCE(SUM(d.subtotal), 0)
		FROM detalles_venta d
		JOIN ventas v ON v.id = d.id_venta
		JOIN productos p ON p.id = d.id_producto
		WHERE v.estado = $1`
	args := []any{entity.SaleStatusCompletada}
	n := 1
	if desde != nil {
		n++
		query += fmt.Sprintf(" AND v.fecha >= $%d", n)
		args = append(args, *desde)
	}
	if hasta != nil {
		n++
		query += fmt.Sprintf(" AND v.fecha <= $%d", n)
		args = append(args, *hasta)
	}
	n++
	query += fmt.Sprintf(`
		GROUP BY d.id_producto, p.codigo, p.nombre
		ORDER BY SUM(d.cantidad) DESC
		LIMIT $%d`, n)
	args = append(args, limite)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reportes.TopProducts: %w", err)
	}
	defer rows.Close()
	var results []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductoID, &row.Codigo, &row.Nombre, &row.TotalVendido, &row.MontoTotal); err != nil {
			return nil, fmt.Errorf("reportes.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

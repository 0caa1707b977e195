package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `
	v.id, v.fecha, COALESCE(v.id_cliente::text, ''), v.id_usuario, v.metodo_pago, v.estado,
	v.subtotal, v.impuestos, v.descuento, v.total,
	COALESCE(c.nombre || ' ' || c.apellido, ''), u.nombre || ' ' || u.apellido`

const saleJoins = `
	FROM ventas v
	LEFT JOIN clientes c ON c.id = v.id_cliente
	JOIN usuarios u ON u.id = v.id_usuario`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.Fecha, &s.ClienteID, &s.UsuarioID, &s.MetodoPago, &s.Estado,
		&s.Subtotal, &s.Impuestos, &s.Descuento, &s.Total,
		&s.ClienteNombre, &s.UsuarioNombre,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO ventas (id, fecha, id_cliente, id_usuario, metodo_pago, estado, subtotal, impuestos, descuento, total)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Fecha, sale.ClienteID, sale.UsuarioID, sale.MetodoPago, sale.Estado,
		sale.Subtotal, sale.Impuestos, sale.Descuento, sale.Total,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de detalle de la venta.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	query := `
		INSERT INTO detalles_venta (id, id_venta, id_producto, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.VentaID, detail.ProductoID, detail.Cantidad,
		detail.PrecioUnitario, detail.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert detalle de venta: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta con nombres de cliente y usuario.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT` + saleColumns + saleJoins + ` WHERE v.id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return s, nil
}

// GetDetails obtiene las líneas de una venta con el resumen del producto.
func (r *SaleRepo) GetDetails(ventaID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT d.id, d.id_venta, d.id_producto, d.cantidad, d.precio_unitario, d.subtotal,
		       p.codigo, p.nombre
		FROM detalles_venta d
		JOIN productos p ON p.id = d.id_producto
		WHERE d.id_venta = $1
		ORDER BY p.nombre ASC`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("get detalles de venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(
			&d.ID, &d.VentaID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal,
			&d.ProductoCodigo, &d.ProductoNombre,
		); err != nil {
			return nil, fmt.Errorf("scan detalle de venta: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista ventas según el filtro, de la más reciente a la más antigua.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT` + saleColumns + saleJoins + ` WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Desde != nil {
		n++
		query += fmt.Sprintf(" AND v.fecha >= $%d", n)
		args = append(args, *filter.Desde)
	}
	if filter.Hasta != nil {
		n++
		query += fmt.Sprintf(" AND v.fecha <= $%d", n)
		args = append(args, *filter.Hasta)
	}
	if filter.Estado != "" {
		n++
		query += fmt.Sprintf(" AND v.estado = $%d", n)
		args = append(args, filter.Estado)
	}
	if filter.UsuarioID != "" {
		n++
		query += fmt.Sprintf(" AND v.id_usuario = $%d", n)
		args = append(args, filter.UsuarioID)
	}
	query += " ORDER BY v.fecha DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de la venta (anulación).
func (r *SaleRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado de venta: %w", err)
	}
	return nil
}

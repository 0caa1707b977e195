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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.codigo, p.nombre, p.descripcion, p.id_categoria,
	p.precio_compra, p.precio_venta, p.stock_actual, p.stock_minimo,
	COALESCE(p.id_proveedor::text, ''), p.fecha_vencimiento, p.activo,
	p.created_at, p.updated_at,
	COALESCE(c.nombre, ''), COALESCE(pr.nombre, '')`

const productJoins = `
	FROM productos p
	LEFT JOIN categorias  c  ON c.id  = p.id_categoria
	LEFT JOIN proveedores pr ON pr.id = p.id_proveedor`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.CategoriaID,
		&p.PrecioCompra, &p.PrecioVenta, &p.StockActual, &p.StockMinimo,
		&p.ProveedorID, &p.FechaVencimiento, &p.Activo,
		&p.CreatedAt, &p.UpdatedAt,
		&p.CategoriaNombre, &p.ProveedorNombre,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, codigo, nombre, descripcion, id_categoria, precio_compra, precio_venta, stock_actual, stock_minimo, id_proveedor, fecha_vencimiento, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, '')::uuid, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Codigo, product.Nombre, product.Descripcion, product.CategoriaID,
		product.PrecioCompra, product.PrecioVenta, product.StockActual, product.StockMinimo,
		product.ProveedorID, product.FechaVencimiento, product.Activo,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con los nombres de categoría y proveedor.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT` + productColumns + productJoins + ` WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByCodigo obtiene un producto por su código único.
func (r *ProductRepo) GetByCodigo(codigo string) (*entity.Product, error) {
	query := `SELECT` + productColumns + productJoins + ` WHERE p.codigo = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get producto por codigo: %w", err)
	}
	return p, nil
}

// List lista productos activos según el filtro.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT` + productColumns + productJoins + ` WHERE p.activo = true`
	args := []any{}
	n := 0
	if filter.CategoriaID != "" {
		n++
		query += fmt.Sprintf(" AND p.id_categoria = $%d", n)
		args = append(args, filter.CategoriaID)
	}
	if filter.ProveedorID != "" {
		n++
		query += fmt.Sprintf(" AND p.id_proveedor = $%d", n)
		args = append(args, filter.ProveedorID)
	}
	if filter.Texto != "" {
		n++
		query += fmt.Sprintf(" AND (p.codigo ILIKE $%d OR p.nombre ILIKE $%d)", n, n)
		args = append(args, "%"+filter.Texto+"%")
	}
	query += " ORDER BY p.nombre ASC"
	return r.queryProducts(query, args...)
}

// ListLowStock lista productos activos con stock igual o por debajo del mínimo,
// ordenados de menor a mayor stock.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT` + productColumns + productJoins + `
		WHERE p.activo = true AND p.stock_actual <= p.stock_minimo
		ORDER BY p.stock_actual ASC`
	return r.queryProducts(query)
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente. El stock no se toca aquí: se maneja
// con DecrementStock/IncrementStock para mantener el control condicional.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos SET codigo = $2, nombre = $3, descripcion = $4, id_categoria = $5,
			precio_compra = $6, precio_venta = $7, stock_minimo = $8,
			id_proveedor = NULLIF($9, '')::uuid, fecha_vencimiento = $10, activo = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Codigo, product.Nombre, product.Descripcion, product.CategoriaID,
		product.PrecioCompra, product.PrecioVenta, product.StockMinimo,
		product.ProveedorID, product.FechaVencimiento, product.Activo, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como inactivo.
func (r *ProductRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete producto: %w", err)
	}
	return nil
}

// DecrementStock descuenta stock de forma condicional y atómica: la fila solo
// se actualiza si queda stock suficiente, así dos ventas concurrentes no
// pueden sobrevender el mismo producto.
func (r *ProductRepo) DecrementStock(productID string, cantidad int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = stock_actual - $2, updated_at = now()
		 WHERE id = $1 AND stock_actual >= $2`,
		productID, cantidad,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// IncrementStock repone stock (inverso exacto del decremento).
func (r *ProductRepo) IncrementStock(productID string, cantidad int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = stock_actual + $2, updated_at = now() WHERE id = $1`,
		productID, cantidad,
	)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// ClearProveedor anula la referencia al proveedor en todos sus productos
// (paso previo al hard delete del proveedor).
func (r *ProductRepo) ClearProveedor(proveedorID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET id_proveedor = NULL, updated_at = now() WHERE id_proveedor = $1`,
		proveedorID,
	)
	if err != nil {
		return fmt.Errorf("clear proveedor en productos: %w", err)
	}
	return nil
}

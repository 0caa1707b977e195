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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, nombre, apellido, documento, tipo_documento, telefono, email, direccion, fecha_registro`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.Documento, &c.TipoDocumento,
		&c.Telefono, &c.Email, &c.Direccion, &c.FechaRegistro,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente. El par (documento, tipo_documento) es único.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO clientes (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Nombre, customer.Apellido, customer.Documento, customer.TipoDocumento,
		customer.Telefono, customer.Email, customer.Direccion, customer.FechaRegistro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// GetByDocumento obtiene un cliente por su par (documento, tipo).
func (r *CustomerRepo) GetByDocumento(documento, tipoDocumento string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE documento = $1 AND tipo_documento = $2`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, documento, tipoDocumento))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get cliente por documento: %w", err)
	}
	return c, nil
}

// List lista todos los clientes.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes ORDER BY apellido ASC, nombre ASC`
	return r.queryCustomers(query)
}

// Search busca clientes por nombre, apellido o documento. El término llega ya
// plegado (minúsculas, sin tildes); translate replica el plegado del lado SQL
// para que "María" y "maria" casen igual.
func (r *CustomerRepo) Search(termino string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes
		WHERE lower(translate(nombre || ' ' || apellido, 'áéíóúüñÁÉÍÓÚÜÑ', 'aeiouunAEIOUUN')) LIKE $1
		   OR documento LIKE $1
		ORDER BY apellido ASC, nombre ASC`
	return r.queryCustomers(query, "%"+termino+"%")
}

func (r *CustomerRepo) queryCustomers(query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE clientes SET nombre = $2, apellido = $3, documento = $4, tipo_documento = $5,
			telefono = $6, email = $7, direccion = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Nombre, customer.Apellido, customer.Documento, customer.TipoDocumento,
		customer.Telefono, customer.Email, customer.Direccion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina el cliente (hard delete). El caso de uso verifica antes que
// no tenga ventas asociadas; si una venta concurrente se registró después de
// esa verificación, la FK de ventas dispara 23503 y se traduce a conflicto.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// CountSales cuenta las ventas que referencian al cliente.
func (r *CustomerRepo) CountSales(clienteID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM ventas WHERE id_cliente = $1`, clienteID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ventas por cliente: %w", err)
	}
	return count, nil
}

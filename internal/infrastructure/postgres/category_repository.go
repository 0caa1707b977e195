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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, nombre, descripcion, activo, created_at, updated_at`

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Activo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categorias (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Nombre, category.Descripcion, category.Activo,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categorias WHERE id = $1`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return c, nil
}

// GetByNombre obtiene una categoría por nombre (único).
func (r *CategoryRepo) GetByNombre(nombre string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categorias WHERE nombre = $1`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get categoria por nombre: %w", err)
	}
	return c, nil
}

// List lista categorías; con includeInactive en false solo las activas.
func (r *CategoryRepo) List(includeInactive bool) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categorias`
	if !includeInactive {
		query += ` WHERE activo = true`
	}
	query += ` ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categorias SET nombre = $2, descripcion = $3, activo = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Nombre, category.Descripcion, category.Activo, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// SoftDelete marca la categoría como inactiva.
func (r *CategoryRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete categoria: %w", err)
	}
	return nil
}

// CountActiveProducts cuenta productos activos que referencian la categoría.
func (r *CategoryRepo) CountActiveProducts(categoriaID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE id_categoria = $1 AND activo = true`,
		categoriaID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count productos por categoria: %w", err)
	}
	return count, nil
}

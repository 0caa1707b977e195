package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de PostgreSQL que los repositorios traducen a errores de dominio.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == pgUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea
// (una fila referenciada por otra tabla).
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == pgForeignKeyViolation
}

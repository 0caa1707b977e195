package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "productos_codigo_key"}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert producto: %w", unique)),
		"debe detectar el código aunque el error venga envuelto")
	assert.False(t, isUniqueViolation(errors.New("sin código")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "ventas_id_cliente_fkey"}

	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("delete cliente: %w", fk)))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: pgUniqueViolation}))
}

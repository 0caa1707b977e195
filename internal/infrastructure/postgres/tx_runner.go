package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/misikss/nova-salud-api/internal/application/sales"
	"github.com/misikss/nova-salud-api/internal/application/usecase"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido es no-op después de un Commit
// exitoso, así cualquier salida temprana deshace todo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(saleRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ensure CatalogTxRunner implements usecase.CatalogTxRunner.
var _ usecase.CatalogTxRunner = (*CatalogTxRunner)(nil)

// CatalogTxRunner ejecuta operaciones de catálogo que tocan proveedores y
// productos dentro de una transacción PostgreSQL.
type CatalogTxRunner struct {
	pool *pgxpool.Pool
}

// NewCatalogTxRunner construye el runner con el pool.
func NewCatalogTxRunner(pool *pgxpool.Pool) *CatalogTxRunner {
	return &CatalogTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *CatalogTxRunner) Run(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	supplierRepo := NewSupplierRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(supplierRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

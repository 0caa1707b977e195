package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// CreateSaleUseCase registra una venta y descuenta el stock en una sola
// transacción.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// Execute valida la venta, recalcula los totales del lado servidor (una venta
// con totales enviados que no coinciden con el recálculo se rechaza) y
// persiste cabecera, detalles y descuento de stock de forma atómica.
// usuarioID es el usuario autenticado que emite la venta.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, usuarioID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Detalles) == 0 {
		return nil, domain.ErrEmptySale
	}

	// Cliente opcional; si viene, debe existir.
	if in.ClienteID != "" {
		if _, err := uc.customerRepo.GetByID(in.ClienteID); err != nil {
			return nil, err
		}
	}

	// Validar productos y preparar líneas (fuera de la tx, solo lectura).
	// El precio unitario lo fija el servidor con el precio de venta vigente
	// salvo que el cliente envíe uno explícito; los subtotales y el total
	// siempre se recalculan y, si el cliente los envió, deben coincidir.
	productsByID := make(map[string]*entity.Product, len(in.Detalles))
	lines := make([]*entity.SaleDetail, 0, len(in.Detalles))
	subtotal := decimal.Zero
	for _, item := range in.Detalles {
		if item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, ok := productsByID[item.ProductoID]
		if !ok {
			var err error
			product, err = uc.productRepo.GetByID(item.ProductoID)
			if err != nil {
				return nil, err
			}
			if !product.Activo {
				return nil, domain.ErrProductNotFound
			}
			productsByID[item.ProductoID] = product
		}
		if product.StockActual < item.Cantidad {
			return nil, &domain.StockError{ProductName: product.Nombre, Available: product.StockActual}
		}
		precio := item.PrecioUnitario
		if precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if precio.IsZero() {
			precio = product.PrecioVenta
		}
		lineSubtotal := precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		if !item.Subtotal.IsZero() && !item.Subtotal.Equal(lineSubtotal) {
			return nil, domain.ErrInvalidInput
		}
		subtotal = subtotal.Add(lineSubtotal)
		lines = append(lines, &entity.SaleDetail{
			ID:             uuid.New().String(),
			ProductoID:     item.ProductoID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: precio,
			Subtotal:       lineSubtotal,
			ProductoCodigo: product.Codigo,
			ProductoNombre: product.Nombre,
		})
	}

	impuestos := in.Impuestos
	descuento := in.Descuento
	if impuestos.LessThan(decimal.Zero) || descuento.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	total := subtotal.Add(impuestos).Sub(descuento)
	if total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Subtotal.IsZero() && !in.Subtotal.Equal(subtotal) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Total.IsZero() && !in.Total.Equal(total) {
		return nil, domain.ErrInvalidInput
	}

	sale := &entity.Sale{
		ID:         uuid.New().String(),
		Fecha:      time.Now(),
		ClienteID:  in.ClienteID,
		UsuarioID:  usuarioID,
		MetodoPago: in.MetodoPago,
		Estado:     entity.SaleStatusCompletada,
		Subtotal:   subtotal,
		Impuestos:  impuestos,
		Descuento:  descuento,
		Total:      total,
	}
	for _, line := range lines {
		line.VentaID = sale.ID
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, line := range lines {
			if err := saleRepo.CreateDetail(line); err != nil {
				return err
			}
			// Descuento condicional: si otra venta concurrente agotó el
			// stock, el UPDATE no afecta filas y toda la venta se revierte.
			ok, err := productRepo.DecrementStock(line.ProductoID, line.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				product := productsByID[line.ProductoID]
				return &domain.StockError{ProductName: product.Nombre, Available: product.StockActual}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Releer con JOIN para devolver nombres de cliente y usuario.
	created, err := uc.saleRepo.GetByID(sale.ID)
	if err != nil {
		return toSaleResponse(sale, lines), nil
	}
	return toSaleResponse(created, lines), nil
}

package sales_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia.
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn con los mismos repos en memoria. No hay rollback
// real; los tests verifican la propagación del error.
type fakeTxRunner struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.saleRepo, f.productRepo)
}

type fakeSaleRepo struct {
	sales      map[string]*entity.Sale
	details    map[string][]*entity.SaleDetail
	lastFilter repository.SaleFilter
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:   make(map[string]*entity.Sale),
		details: make(map[string][]*entity.SaleDetail),
	}
}

func (f *fakeSaleRepo) Create(sale *entity.Sale) error {
	f.sales[sale.ID] = sale
	return nil
}

func (f *fakeSaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	f.details[detail.VentaID] = append(f.details[detail.VentaID], detail)
	return nil
}

func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

func (f *fakeSaleRepo) GetDetails(ventaID string) ([]*entity.SaleDetail, error) {
	return f.details[ventaID], nil
}

func (f *fakeSaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	f.lastFilter = filter
	var out []*entity.Sale
	for _, s := range f.sales {
		if filter.UsuarioID != "" && s.UsuarioID != filter.UsuarioID {
			continue
		}
		if filter.Estado != "" && s.Estado != filter.Estado {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSaleRepo) UpdateEstado(id, estado string) error {
	sale, ok := f.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	sale.Estado = estado
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	// decrementFails simula una venta concurrente que agotó el stock entre
	// la validación y el UPDATE condicional.
	decrementFails bool
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) GetByCodigo(codigo string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *fakeProductRepo) List(_ repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) Update(product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) SoftDelete(id string) error {
	if p, ok := f.products[id]; ok {
		p.Activo = false
	}
	return nil
}

func (f *fakeProductRepo) DecrementStock(productID string, cantidad int) (bool, error) {
	if f.decrementFails {
		return false, nil
	}
	p, ok := f.products[productID]
	if !ok || p.StockActual < cantidad {
		return false, nil
	}
	p.StockActual -= cantidad
	return true, nil
}

func (f *fakeProductRepo) IncrementStock(productID string, cantidad int) error {
	p, ok := f.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.StockActual += cantidad
	return nil
}

func (f *fakeProductRepo) ClearProveedor(proveedorID string) error {
	for _, p := range f.products {
		if p.ProveedorID == proveedorID {
			p.ProveedorID = ""
		}
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	f := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	for _, c := range customers {
		f.customers[c.ID] = c
	}
	return f
}

func (f *fakeCustomerRepo) Create(customer *entity.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) GetByDocumento(documento, tipoDocumento string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Documento == documento && c.TipoDocumento == tipoDocumento {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCustomerRepo) List() ([]*entity.Customer, error) { return nil, nil }

func (f *fakeCustomerRepo) Search(_ string) ([]*entity.Customer, error) { return nil, nil }

func (f *fakeCustomerRepo) Update(customer *entity.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(id string) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) CountSales(_ string) (int, error) { return 0, nil }

// producto de catálogo listo para vender.
func testProduct(id, codigo, nombre string, precio float64, stock int) *entity.Product {
	return &entity.Product{
		ID:          id,
		Codigo:      codigo,
		Nombre:      nombre,
		PrecioVenta: decimal.NewFromFloat(precio),
		StockActual: stock,
		StockMinimo: 2,
		Activo:      true,
	}
}

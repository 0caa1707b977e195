package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia para los casos de uso CRUD.

// fakeCatalogTxRunner ejecuta fn directamente con los repos dados y cuenta
// las invocaciones.
type fakeCatalogTxRunner struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	runs         int
}

func (f *fakeCatalogTxRunner) Run(_ context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) error) error {
	f.runs++
	return fn(f.supplierRepo, f.productRepo)
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) List(includeInactive bool) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if !includeInactive && !u.Activo {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) SoftDelete(id string) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Activo = false
	return nil
}

type fakeCategoryRepo struct {
	categories     map[string]*entity.Category
	activeProducts map[string]int
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	f := &fakeCategoryRepo{
		categories:     make(map[string]*entity.Category),
		activeProducts: make(map[string]int),
	}
	for _, c := range categories {
		f.categories[c.ID] = c
	}
	return f
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) GetByNombre(nombre string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCategoryRepo) List(includeInactive bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if !includeInactive && !c.Activo {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) SoftDelete(id string) error {
	c, ok := f.categories[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Activo = false
	return nil
}

func (f *fakeCategoryRepo) CountActiveProducts(categoriaID string) (int, error) {
	return f.activeProducts[categoriaID], nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	f := &fakeSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
	for _, s := range suppliers {
		f.suppliers[s.ID] = s
	}
	return f
}

func (f *fakeSupplierRepo) Create(supplier *entity.Supplier) error {
	f.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSupplierRepo) Update(supplier *entity.Supplier) error {
	f.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSupplierRepo) Delete(id string) error {
	delete(f.suppliers, id)
	return nil
}

type fakeCustomerRepo struct {
	customers  map[string]*entity.Customer
	salesCount map[string]int
	lastSearch string
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	f := &fakeCustomerRepo{
		customers:  make(map[string]*entity.Customer),
		salesCount: make(map[string]int),
	}
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

func (f *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Search(termino string) ([]*entity.Customer, error) {
	f.lastSearch = termino
	return nil, nil
}

func (f *fakeCustomerRepo) Update(customer *entity.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(id string) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) CountSales(clienteID string) (int, error) {
	return f.salesCount[clienteID], nil
}

type fakeProductRepo struct {
	products   map[string]*entity.Product
	lowStock   []*entity.Product
	lastFilter repository.ProductFilter
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

func (f *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	f.lastFilter = filter
	var out []*entity.Product
	for _, p := range f.products {
		if !p.Activo {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	return f.lowStock, nil
}

func (f *fakeProductRepo) Update(product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) SoftDelete(id string) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Activo = false
	return nil
}

func (f *fakeProductRepo) DecrementStock(productID string, cantidad int) (bool, error) {
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

func testCategoria(id, nombre string) *entity.Category {
	return &entity.Category{ID: id, Nombre: nombre, Activo: true}
}

func testProducto(id, codigo, categoriaID string, stock int) *entity.Product {
	return &entity.Product{
		ID:          id,
		Codigo:      codigo,
		Nombre:      "Producto " + codigo,
		CategoriaID: categoriaID,
		PrecioVenta: decimal.NewFromFloat(9.90),
		StockActual: stock,
		StockMinimo: 2,
		Activo:      true,
	}
}

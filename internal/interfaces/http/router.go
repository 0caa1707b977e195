package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	CategoryHandler  *CategoryHandler
	SupplierHandler  *SupplierHandler
	CustomerHandler  *CustomerHandler
	ProductHandler   *ProductHandler
	SaleHandler      *SaleHandler
	DashboardHandler *DashboardHandler
	JWTSecret        string
}

// Router registra las rutas de la API. Las rutas estáticas se registran antes
// que sus hermanas con parámetro para que Fiber no las capture como :id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
	})

	// Auth: login y refresh públicos, perfil protegido.
	authGroup := api.Group("/auth")
	authGroup.Post("/login", deps.AuthHandler.Login)
	authGroup.Post("/refresh-token", deps.AuthHandler.Refresh)
	authGroup.Get("/perfil", AuthMiddleware(deps.JWTSecret), deps.AuthHandler.Profile)

	// Todo lo demás requiere Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	usuarios := protected.Group("/usuarios")
	usuarios.Get("/", Authorize("usuarios", ActionRead), deps.UserHandler.List)
	usuarios.Post("/", Authorize("usuarios", ActionWrite), deps.UserHandler.Create)
	usuarios.Get("/:id", Authorize("usuarios", ActionRead), deps.UserHandler.GetByID)
	usuarios.Put("/:id", Authorize("usuarios", ActionWrite), deps.UserHandler.Update)
	usuarios.Delete("/:id", Authorize("usuarios", ActionDelete), deps.UserHandler.Delete)

	categorias := protected.Group("/categorias")
	categorias.Get("/", Authorize("categorias", ActionRead), deps.CategoryHandler.List)
	categorias.Post("/", Authorize("categorias", ActionWrite), deps.CategoryHandler.Create)
	categorias.Get("/:id", Authorize("categorias", ActionRead), deps.CategoryHandler.GetByID)
	categorias.Put("/:id", Authorize("categorias", ActionWrite), deps.CategoryHandler.Update)
	categorias.Delete("/:id", Authorize("categorias", ActionDelete), deps.CategoryHandler.Delete)

	proveedores := protected.Group("/proveedores")
	proveedores.Get("/", Authorize("proveedores", ActionRead), deps.SupplierHandler.List)
	proveedores.Post("/", Authorize("proveedores", ActionWrite), deps.SupplierHandler.Create)
	proveedores.Get("/:id", Authorize("proveedores", ActionRead), deps.SupplierHandler.GetByID)
	proveedores.Put("/:id", Authorize("proveedores", ActionWrite), deps.SupplierHandler.Update)
	proveedores.Delete("/:id", Authorize("proveedores", ActionDelete), deps.SupplierHandler.Delete)

	productos := protected.Group("/productos")
	productos.Get("/", Authorize("productos", ActionRead), deps.ProductHandler.List)
	productos.Post("/", Authorize("productos", ActionWrite), deps.ProductHandler.Create)
	productos.Get("/stock-bajo", Authorize("productos", ActionRead), deps.ProductHandler.ListLowStock)
	productos.Get("/categoria/:id", Authorize("productos", ActionRead), deps.ProductHandler.ListByCategory)
	productos.Get("/proveedor/:id", Authorize("productos", ActionRead), deps.ProductHandler.ListBySupplier)
	productos.Get("/:id", Authorize("productos", ActionRead), deps.ProductHandler.GetByID)
	productos.Put("/:id", Authorize("productos", ActionWrite), deps.ProductHandler.Update)
	productos.Post("/:id/ajustar-stock", Authorize("productos", ActionWrite), deps.ProductHandler.AdjustStock)
	productos.Delete("/:id", Authorize("productos", ActionDelete), deps.ProductHandler.Delete)

	clientes := protected.Group("/clientes")
	clientes.Get("/", Authorize("clientes", ActionRead), deps.CustomerHandler.List)
	clientes.Post("/", Authorize("clientes", ActionWrite), deps.CustomerHandler.Create)
	clientes.Get("/buscar/:termino", Authorize("clientes", ActionRead), deps.CustomerHandler.Search)
	clientes.Get("/:id", Authorize("clientes", ActionRead), deps.CustomerHandler.GetByID)
	clientes.Put("/:id", Authorize("clientes", ActionWrite), deps.CustomerHandler.Update)
	clientes.Delete("/:id", Authorize("clientes", ActionDelete), deps.CustomerHandler.Delete)

	ventas := protected.Group("/ventas")
	ventas.Get("/", Authorize("ventas", ActionRead), deps.SaleHandler.List)
	ventas.Post("/", Authorize("ventas", ActionWrite), deps.SaleHandler.Create)
	ventas.Get("/reportes/diario", Authorize("ventas", ActionReport), deps.SaleHandler.DailyReport)
	ventas.Get("/reportes/mensual", Authorize("ventas", ActionReport), deps.SaleHandler.MonthlyReport)
	ventas.Get("/reportes/productos-mas-vendidos", Authorize("ventas", ActionReport), deps.SaleHandler.TopProductsReport)
	ventas.Get("/:id", Authorize("ventas", ActionRead), deps.SaleHandler.GetByID)
	ventas.Put("/:id/anular", Authorize("ventas", ActionVoid), deps.SaleHandler.Void)
	ventas.Get("/:id/pdf", Authorize("ventas", ActionRead), deps.SaleHandler.Receipt)

	dashboard := protected.Group("/dashboard", Authorize("dashboard", ActionRead))
	dashboard.Get("/", deps.DashboardHandler.Summary)
	dashboard.Get("/total", deps.DashboardHandler.Total)
	dashboard.Get("/clientes", deps.DashboardHandler.Customers)
	dashboard.Get("/productos", deps.DashboardHandler.Products)
	dashboard.Get("/mensuales", deps.DashboardHandler.Monthly)
	dashboard.Get("/productos/stock-bajo", deps.DashboardHandler.LowStock)
	dashboard.Get("/productos-mas-vendidos", deps.DashboardHandler.TopProducts)
}

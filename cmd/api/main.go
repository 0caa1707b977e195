// @title           Nova Salud API
// @version         1.0
// @description     API de gestión para la botica Nova Salud: catálogo, ventas, clientes y reportes.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/misikss/nova-salud-api/internal/application/analytics"
	"github.com/misikss/nova-salud-api/internal/application/auth"
	"github.com/misikss/nova-salud-api/internal/application/sales"
	"github.com/misikss/nova-salud-api/internal/application/usecase"
	infrapdf "github.com/misikss/nova-salud-api/internal/infrastructure/pdf"
	"github.com/misikss/nova-salud-api/internal/infrastructure/postgres"
	httpRouter "github.com/misikss/nova-salud-api/internal/interfaces/http"
	"github.com/misikss/nova-salud-api/pkg/config"
	"github.com/misikss/nova-salud-api/pkg/logger"

	_ "github.com/misikss/nova-salud-api/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Name:  cfg.App.Name,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	httpRouter.SetDevMode(cfg.App.Env == "development")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	catalogTxRunner := postgres.NewCatalogTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT)
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, catalogTxRunner)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)

	createSaleUC := sales.NewCreateSaleUseCase(txRunner, saleRepo, productRepo, customerRepo)
	voidSaleUC := sales.NewVoidSaleUseCase(txRunner, saleRepo)
	saleQueryUC := sales.NewSaleQueryUseCase(saleRepo)
	reportUC := sales.NewReportUseCase(reportRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(reportRepo, productRepo)

	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nova Salud API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthHandler:      httpRouter.NewAuthHandler(authUC),
		UserHandler:      httpRouter.NewUserHandler(userUC),
		CategoryHandler:  httpRouter.NewCategoryHandler(categoryUC),
		SupplierHandler:  httpRouter.NewSupplierHandler(supplierUC),
		CustomerHandler:  httpRouter.NewCustomerHandler(customerUC),
		ProductHandler:   httpRouter.NewProductHandler(productUC),
		SaleHandler:      httpRouter.NewSaleHandler(createSaleUC, voidSaleUC, saleQueryUC, reportUC, receipts),
		DashboardHandler: httpRouter.NewDashboardHandler(dashboardUC),
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

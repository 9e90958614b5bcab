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

	"github.com/dcontreras/resort-ops/internal/application/auth"
	"github.com/dcontreras/resort-ops/internal/application/inventory"
	"github.com/dcontreras/resort-ops/internal/application/orders"
	"github.com/dcontreras/resort-ops/internal/application/usecase"
	infrapdf "github.com/dcontreras/resort-ops/internal/infrastructure/pdf"
	"github.com/dcontreras/resort-ops/internal/infrastructure/postgres"
	httpRouter "github.com/dcontreras/resort-ops/internal/interfaces/http"
	"github.com/dcontreras/resort-ops/pkg/config"
	"github.com/dcontreras/resort-ops/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	movementUC := inventory.NewMovementUseCase(txRunner, articleRepo, warehouseRepo, stockRepo, movementRepo)
	userUC := usecase.NewUserUseCase(txRunner, userRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	customerUC := usecase.NewCustomerUseCase(txRunner, customerRepo, locationRepo)
	supplierUC := usecase.NewSupplierUseCase(txRunner, supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(txRunner, categoryRepo, articleRepo)
	warehouseUC := usecase.NewWarehouseUseCase(txRunner, warehouseRepo)
	articleUC := usecase.NewArticleUseCase(txRunner, articleRepo, categoryRepo, stockRepo, movementUC)

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	orderUC := orders.NewOrderUseCase(txRunner, customerRepo, locationRepo, articleRepo, orderRepo, movementUC, receiptGen)

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

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
		Title:    "Resort Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		LocationUC:  locationUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		CategoryUC:  categoryUC,
		WarehouseUC: warehouseUC,
		ArticleUC:   articleUC,
		MovementUC:  movementUC,
		OrderUC:     orderUC,
		JWTSecret:   cfg.JWT.Secret,
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

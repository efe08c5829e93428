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

	"github.com/bridgewms/kepabeanan-api/internal/application/inventory"
	"github.com/bridgewms/kepabeanan-api/internal/application/kepabeanan"
	"github.com/bridgewms/kepabeanan-api/internal/application/ledger"
	"github.com/bridgewms/kepabeanan-api/internal/application/usecase"
	"github.com/bridgewms/kepabeanan-api/internal/domain/repository"
	"github.com/bridgewms/kepabeanan-api/internal/infrastructure/docstore"
	"github.com/bridgewms/kepabeanan-api/internal/infrastructure/postgres"
	httpRouter "github.com/bridgewms/kepabeanan-api/internal/interfaces/http"
	"github.com/bridgewms/kepabeanan-api/pkg/config"
	"github.com/bridgewms/kepabeanan-api/pkg/logger"
)

// repos groups the repository set for one storage driver.
type repos struct {
	movements    repository.MovementRepository
	items        repository.ItemRepository
	stock        repository.StockRepository
	warehouses   repository.WarehouseRepository
	consignments repository.ConsignmentRepository
	idempotency  repository.IdempotencyRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("starting application")

	ctx := context.Background()

	var r repos
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connection")
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("postgres migration")
		}

		r = repos{
			movements:    postgres.NewMovementRepository(pool),
			items:        postgres.NewItemRepository(pool),
			stock:        postgres.NewStockRepository(pool),
			warehouses:   postgres.NewWarehouseRepository(pool),
			consignments: postgres.NewConsignmentRepository(pool),
			idempotency:  postgres.NewIdempotencyRepository(pool),
		}
	default:
		store, err := docstore.Open(cfg.Storage.DataFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.DataFile).Msg("open data file")
		}

		r = repos{
			movements:    docstore.NewMovementRepository(store),
			items:        docstore.NewItemRepository(store),
			stock:        docstore.NewStockRepository(store),
			warehouses:   docstore.NewWarehouseRepository(store),
			consignments: docstore.NewConsignmentRepository(store),
			idempotency:  docstore.NewIdempotencyRepository(store),
		}
	}

	ledgerUC := ledger.NewUseCase(r.movements)
	mutationUC := kepabeanan.NewMutationUseCase(r.movements, r.items)
	itemUC := usecase.NewItemUseCase(r.items)
	stockUC := inventory.NewStockUseCase(r.stock, r.consignments)
	warehouseUC := usecase.NewWarehouseUseCase(r.warehouses, r.stock, r.idempotency)
	consignmentUC := usecase.NewConsignmentUseCase(r.consignments)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs. The middleware panics on a
	// missing spec file, so it is mounted only when the file is present
	// (deploys may strip docs/).
	const swaggerSpec = "./docs/swagger.json"
	if _, err := os.Stat(swaggerSpec); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpec,
			Path:     "docs",
			Title:    "Kepabeanan API",
		}))
	} else {
		log.Warn().Str("path", swaggerSpec).Msg("swagger spec not found, docs UI disabled")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:      ledgerUC,
		MutationUC:    mutationUC,
		ItemUC:        itemUC,
		StockUC:       stockUC,
		WarehouseUC:   warehouseUC,
		ConsignmentUC: consignmentUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bridgewms/kepabeanan-api/internal/application/inventory"
	"github.com/bridgewms/kepabeanan-api/internal/application/kepabeanan"
	"github.com/bridgewms/kepabeanan-api/internal/application/ledger"
	"github.com/bridgewms/kepabeanan-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	LedgerUC      *ledger.UseCase
	MutationUC    *kepabeanan.MutationUseCase
	ItemUC        *usecase.ItemUseCase
	StockUC       *inventory.StockUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	ConsignmentUC *usecase.ConsignmentUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Warehouse lifecycle sync + listings
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	api.Post("/warehouses/sync", warehouseHandler.Sync)
	api.Get("/warehouses", warehouseHandler.List)
	api.Get("/locations", warehouseHandler.Locations)

	// At-rest inventory
	stockHandler := NewStockHandler(deps.StockUC)
	api.Get("/inventory", stockHandler.List)
	api.Post("/inventory/receive", stockHandler.Receive)
	api.Post("/inventory/dispatch", stockHandler.Dispatch)

	// Item master
	itemHandler := NewItemHandler(deps.ItemUC)
	api.Post("/inventory/items", itemHandler.Upsert)
	api.Get("/inventory/items", itemHandler.List)

	// Movement ledger
	movementHandler := NewMovementHandler(deps.LedgerUC)
	api.Post("/inventory/movements", movementHandler.Create)
	api.Get("/inventory/movements", movementHandler.List)

	// Kepabeanan aggregation
	mutationHandler := NewMutationHandler(deps.MutationUC)
	api.Get("/inventory/aggregations/mutasi", mutationHandler.Aggregate)

	// Consignments
	consignmentHandler := NewConsignmentHandler(deps.ConsignmentUC, deps.StockUC)
	api.Get("/consignments", consignmentHandler.List)
	api.Post("/consignments", consignmentHandler.Create)
	api.Post("/consignments/dispatch", consignmentHandler.Dispatch)
	api.Put("/consignments/:id", consignmentHandler.Update)
	api.Delete("/consignments/:id", consignmentHandler.Delete)
}

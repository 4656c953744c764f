package http

import (
	"github.com/gofiber/fiber/v2"

	appstats "github.com/jhoicas/ventas-tracker/internal/application/stats"
	"github.com/jhoicas/ventas-tracker/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	StatsUC   *appstats.UseCase
	ReportUC  *appstats.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stats (dashboard)
	statsGroup := api.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC, deps.ReportUC)
	statsGroup.Get("/", statsHandler.GetStats)
	statsGroup.Get("/report", statsHandler.GetReport)
}

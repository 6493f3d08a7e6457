package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/LeandroFernandess/SGE/internal/application/analytics"
	"github.com/LeandroFernandess/SGE/internal/application/inventory"
	"github.com/LeandroFernandess/SGE/internal/application/usecase"
	"github.com/LeandroFernandess/SGE/pkg/logger"
)

// Pinger comprueba que el almacenamiento responde (pgxpool.Pool o memory.Store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	BrandUC          *usecase.BrandUseCase
	SupplierUC       *usecase.SupplierUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	Metrics          *analytics.MetricsUseCase
	Reports          *analytics.ReportUseCase
	Storage          Pinger
	AppName          string
	Log              *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.Storage, deps.AppName, deps.Log))

	api := app.Group("/api/v1")

	registerReference(api.Group("/categories"), NewReferenceHandler(deps.CategoryUC, deps.Log, "categoría no encontrada"))
	registerReference(api.Group("/brands"), NewReferenceHandler(deps.BrandUC, deps.Log, "marca no encontrada"))
	registerReference(api.Group("/suppliers"), NewReferenceHandler(deps.SupplierUC, deps.Log, "proveedor no encontrado"))

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movimientos: solo alta y consulta.
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementQuery, deps.Log)
	inflows := api.Group("/inflows")
	inflows.Get("/", movementHandler.ListInflows)
	inflows.Post("/", movementHandler.CreateInflow)
	inflows.Get("/:id", movementHandler.GetInflow)
	outflows := api.Group("/outflows")
	outflows.Get("/", movementHandler.ListOutflows)
	outflows.Post("/", movementHandler.CreateOutflow)
	outflows.Get("/:id", movementHandler.GetOutflow)

	metricsHandler := NewMetricsHandler(deps.Metrics, deps.Log)
	metrics := api.Group("/metrics")
	metrics.Get("/products", metricsHandler.Products)
	metrics.Get("/sales", metricsHandler.Sales)
	metrics.Get("/daily-sales-value", metricsHandler.DailySalesValue)
	metrics.Get("/daily-sales-quantity", metricsHandler.DailySalesQuantity)
	metrics.Get("/products-by-category", metricsHandler.ProductsByCategory)
	metrics.Get("/products-by-brand", metricsHandler.ProductsByBrand)
	api.Get("/dashboard", metricsHandler.Dashboard)

	reportHandler := NewReportHandler(deps.Reports, deps.Log)
	reports := api.Group("/reports")
	reports.Get("/dashboard.pdf", reportHandler.DashboardPDF)
	reports.Get("/stock.xml", reportHandler.StockXML)
	reports.Get("/stock.xlsx", reportHandler.StockXLSX)
}

func registerReference(g fiber.Router, h *ReferenceHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func healthHandler(storage Pinger, appName string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if storage != nil {
			if err := storage.Ping(c.UserContext()); err != nil {
				log.Error().Err(err).Msg("health: almacenamiento no disponible")
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": appName})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": appName})
	}
}

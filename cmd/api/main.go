package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/LeandroFernandess/SGE/docs"
	"github.com/LeandroFernandess/SGE/internal/application/analytics"
	"github.com/LeandroFernandess/SGE/internal/application/inventory"
	"github.com/LeandroFernandess/SGE/internal/application/usecase"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/memory"
	infrapdf "github.com/LeandroFernandess/SGE/internal/infrastructure/pdf"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/postgres"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/xlsxexport"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/xmlexport"
	httpRouter "github.com/LeandroFernandess/SGE/internal/interfaces/http"
	"github.com/LeandroFernandess/SGE/pkg/config"
	"github.com/LeandroFernandess/SGE/pkg/logger"
)

// storage repositorios de un driver concreto.
type storage struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	suppliers  repository.SupplierRepository
	inflows    repository.InflowRepository
	outflows   repository.OutflowRepository
	metrics    repository.MetricsRepository
	txRunner   inventory.TxRunner
	pinger     httpRouter.Pinger
	close      func()
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		s := memory.NewStore()
		return &storage{
			products:   s.Products(),
			categories: s.Categories(),
			brands:     s.Brands(),
			suppliers:  s.Suppliers(),
			inflows:    s.Inflows(),
			outflows:   s.Outflows(),
			metrics:    s.Metrics(),
			txRunner:   memory.NewTxRunner(s),
			pinger:     s,
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &storage{
		products:   postgres.NewProductRepository(pool),
		categories: postgres.NewCategoryRepository(pool),
		brands:     postgres.NewBrandRepository(pool),
		suppliers:  postgres.NewSupplierRepository(pool),
		inflows:    postgres.NewInflowRepository(pool),
		outflows:   postgres.NewOutflowRepository(pool),
		metrics:    postgres.NewMetricsRepository(pool),
		txRunner:   postgres.NewTxRunner(pool),
		pinger:     pool,
		close:      pool.Close,
	}, nil
}

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer st.close()

	money, err := analytics.NewMoneyFormatter(cfg.Metrics.Locale)
	if err != nil {
		log.Fatal().Err(err).Msg("METRICS_LOCALE")
	}
	loc, err := cfg.Metrics.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("METRICS_TIMEZONE")
	}

	metricsUC := analytics.NewMetricsUseCase(st.metrics, money, loc)
	reportUC := analytics.NewReportUseCase(
		metricsUC, st.metrics,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		xmlexport.NewStockExporter(),
		xlsxexport.NewStockExporter(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(log.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.SwaggerJSON,
		Path:        "docs",
		Title:       "SGE API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       usecase.NewCategoryUseCase(st.categories),
		BrandUC:          usecase.NewBrandUseCase(st.brands),
		SupplierUC:       usecase.NewSupplierUseCase(st.suppliers),
		ProductUC:        usecase.NewProductUseCase(st.products, st.categories, st.brands),
		RegisterMovement: inventory.NewRegisterMovementUseCase(st.txRunner, st.suppliers),
		MovementQuery:    inventory.NewMovementQueryUseCase(st.inflows, st.outflows),
		Metrics:          metricsUC,
		Reports:          reportUC,
		Storage:          st.pinger,
		AppName:          cfg.App.Name,
		Log:              log,
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

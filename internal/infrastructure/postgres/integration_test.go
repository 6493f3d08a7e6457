//go:build integration

package postgres_test

// Tests de los repositorios contra un PostgreSQL real levantado con testcontainers.
// Ejecutar con: go test -tags integration ./internal/infrastructure/postgres/... -v

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/LeandroFernandess/SGE/internal/application/analytics"
	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/application/inventory"
	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/postgres"
	"github.com/LeandroFernandess/SGE/pkg/config"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("sge_test"),
		tcPostgres.WithUsername("sge"),
		tcPostgres.WithPassword("sge"),
		tcPostgres.WithInitScripts(filepath.Join("..", "..", "..", "migrations", "0001_init.sql")),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	url, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

type seeded struct {
	category, brand, supplier, product string
}

func seed(t *testing.T, pool *pgxpool.Pool) seeded {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	s := seeded{uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString()}
	require.NoError(t, postgres.NewCategoryRepository(pool).Create(ctx, &entity.Category{ID: s.category, Name: "Áudio", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, postgres.NewBrandRepository(pool).Create(ctx, &entity.Brand{ID: s.brand, Name: "Sony", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, postgres.NewSupplierRepository(pool).Create(ctx, &entity.Supplier{ID: s.supplier, Name: "Atacado", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, postgres.NewProductRepository(pool).Create(ctx, &entity.Product{
		ID: s.product, Title: "Fone", CategoryID: s.category, BrandID: s.brand,
		CostPrice: decimal.RequireFromString("10.00"), SellingPrice: decimal.RequireFromString("15.00"),
		CreatedAt: now, UpdatedAt: now,
	}))
	return s
}

func TestPostgres_LibroDeStockYMetricas(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)
	s := seed(t, pool)

	products := postgres.NewProductRepository(pool)
	mov := inventory.NewRegisterMovementUseCase(postgres.NewTxRunner(pool), postgres.NewSupplierRepository(pool))

	_, err := mov.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: s.product, SupplierID: s.supplier, Quantity: 5})
	require.NoError(t, err)
	_, err = mov.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: s.product, Quantity: 3})
	require.NoError(t, err)
	_, err = mov.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: s.product, Quantity: 10})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, err := products.GetByID(ctx, s.product)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Quantity)

	_, total, err := postgres.NewOutflowRepository(pool).List(ctx, entity.MovementFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	money, err := analytics.NewMoneyFormatter("en")
	require.NoError(t, err)
	metrics := analytics.NewMetricsUseCase(postgres.NewMetricsRepository(pool), money, time.UTC)
	sales, err := metrics.SalesMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sales.TotalSales)
	assert.Equal(t, int64(3), sales.TotalProductSold)
	assert.Equal(t, "45.00", sales.TotalSalesValue)
	assert.Equal(t, "15.00", sales.TotalSalesProfit)

	daily, err := metrics.DailySalesQuantity(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 0, 1}, daily.Values)

	byBrand, err := metrics.ProductCountByBrand(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Sony": 1}, byBrand)
}

func TestPostgres_SalidasConcurrentesNoSobrevenden(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)
	s := seed(t, pool)
	mov := inventory.NewRegisterMovementUseCase(postgres.NewTxRunner(pool), postgres.NewSupplierRepository(pool))
	_, err := mov.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: s.product, SupplierID: s.supplier, Quantity: 5})
	require.NoError(t, err)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mov.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: s.product, Quantity: 1})
			if err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			} else if !errors.Is(err, domain.ErrInsufficientStock) {
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	p, err := postgres.NewProductRepository(pool).GetByID(ctx, s.product)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity)
}

func TestPostgres_BorradoProtegido(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)
	s := seed(t, pool)

	assert.ErrorIs(t, postgres.NewCategoryRepository(pool).Delete(ctx, s.category), domain.ErrInUse)
	assert.ErrorIs(t, postgres.NewBrandRepository(pool).Delete(ctx, s.brand), domain.ErrInUse)
	assert.ErrorIs(t, postgres.NewCategoryRepository(pool).Delete(ctx, uuid.NewString()), domain.ErrNotFound)
	assert.ErrorIs(t, postgres.NewProductRepository(pool).Delete(ctx, "no-es-uuid"), domain.ErrNotFound)

	list, total, err := postgres.NewProductRepository(pool).List(ctx, entity.ProductFilter{Category: "Áudio", Title: "fo", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.True(t, list[0].SellingPrice.Equal(decimal.RequireFromString("15")))
}

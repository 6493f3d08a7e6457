package inventory_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/application/inventory"
	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	invdomain "github.com/LeandroFernandess/SGE/internal/domain/inventory"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/memory"
)

type fixture struct {
	store *memory.Store
	uc    *inventory.RegisterMovementUseCase
	query *inventory.MovementQueryUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Categories().Create(ctx, &entity.Category{ID: "cat", Name: "Eletrônicos"}))
	require.NoError(t, s.Brands().Create(ctx, &entity.Brand{ID: "brd", Name: "Acme"}))
	require.NoError(t, s.Suppliers().Create(ctx, &entity.Supplier{ID: "sup", Name: "Fornecedor"}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{
		ID: "prd", Title: "Fone", CategoryID: "cat", BrandID: "brd",
		CostPrice: decimal.RequireFromString("10.00"), SellingPrice: decimal.RequireFromString("15.00"),
	}))
	return &fixture{
		store: s,
		uc:    inventory.NewRegisterMovementUseCase(memory.NewTxRunner(s), s.Suppliers()),
		query: inventory.NewMovementQueryUseCase(s.Inflows(), s.Outflows()),
	}
}

func (f *fixture) stock(t *testing.T) int {
	t.Helper()
	p, err := f.store.Products().GetByID(context.Background(), "prd")
	require.NoError(t, err)
	return p.Quantity
}

func TestRegisterMovement_EscenarioCompleto(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in, err := f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: 5})
	require.NoError(t, err)
	require.NotNil(t, in.ProductStock)
	assert.Equal(t, 5, *in.ProductStock)
	assert.Equal(t, "Fone", in.ProductTitle)

	out, err := f.uc.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: "prd", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, *out.ProductStock)
	assert.Equal(t, 2, f.stock(t))

	_, err = f.uc.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: "prd", Quantity: 10})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Fone", stockErr.ProductTitle)
	assert.Equal(t, 2, stockErr.Available)

	assert.Equal(t, 2, f.stock(t))
	list, err := f.query.ListOutflows(ctx, dto.MovementListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total, "la salida rechazada no se persiste")
}

func TestRegisterOutflow_StockExactoQuedaEnCero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: 4})
	require.NoError(t, err)

	_, err = f.uc.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: "prd", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 0, f.stock(t))
}

func TestRegisterMovement_SumaNetaDeMovimientos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, q := range []int{3, 7, 10} {
		_, err := f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: q})
		require.NoError(t, err)
	}
	for _, q := range []int{5, 1} {
		_, err := f.uc.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: "prd", Quantity: q})
		require.NoError(t, err)
	}
	assert.Equal(t, 20-6, f.stock(t))
}

func TestRegisterMovement_CantidadNoPositivaNoAlteraStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, f.stock(t))
}

func TestRegisterInflow_StockNoDesbordaElRango(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: math.MaxInt})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.stock(t))

	_, err = f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: invdomain.MaxQuantity})
	require.NoError(t, err)

	_, err = f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, invdomain.MaxQuantity, f.stock(t))

	list, err := f.query.ListInflows(ctx, dto.MovementListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total, "la entrada rechazada no se persiste")

	_, err = f.uc.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: "prd", Quantity: math.MaxInt})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, invdomain.MaxQuantity, f.stock(t))
}

func TestRegisterMovement_ReferenciasInexistentes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "nope", SupplierID: "sup", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.RegisterOutflow(ctx, dto.CreateOutflowRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// failingAdjustRunner envuelve un TxRunner y hace fallar el ajuste de stock.
type failingAdjustRunner struct {
	inner inventory.TxRunner
	err   error
}

type failingProducts struct {
	repository.ProductRepository
	err error
}

func (p failingProducts) AdjustQuantity(context.Context, string, int) (int, error) {
	return 0, p.err
}

func (r failingAdjustRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.InflowRepository, repository.OutflowRepository) error) error {
	return r.inner.Run(ctx, func(p repository.ProductRepository, i repository.InflowRepository, o repository.OutflowRepository) error {
		return fn(failingProducts{ProductRepository: p, err: r.err}, i, o)
	})
}

func TestRegisterInflow_FalloDelAjusteRevierteElMovimiento(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	boom := errors.New("update products falló")
	uc := inventory.NewRegisterMovementUseCase(failingAdjustRunner{inner: memory.NewTxRunner(f.store), err: boom}, f.store.Suppliers())

	_, err := uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: 5})
	require.ErrorIs(t, err, boom)

	list, err := f.query.ListInflows(ctx, dto.MovementListRequest{})
	require.NoError(t, err)
	assert.Zero(t, list.Page.Total)
	assert.Equal(t, 0, f.stock(t))
}

func TestRegisterOutflow_ConcurrenciaNoSobrevende(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: 10})
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, fail int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.RegisterOutflow(ctx, dto.CreateOutflowRequest{ProductID: "prd", Quantity: 1})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, domain.ErrInsufficientStock) {
				fail++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, ok)
	assert.Equal(t, 15, fail)
	assert.Equal(t, 0, f.stock(t))
}

func TestMovementQuery_DetalleYFiltro(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.uc.RegisterInflow(ctx, dto.CreateInflowRequest{ProductID: "prd", SupplierID: "sup", Quantity: 2, Description: "lote 1"})
	require.NoError(t, err)

	got, err := f.query.GetInflow(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "lote 1", got.Description)
	assert.Equal(t, "Fornecedor", got.SupplierName)
	assert.Nil(t, got.ProductStock)

	_, err = f.query.GetOutflow(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.query.ListInflows(ctx, dto.MovementListRequest{Product: "fon"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total)
	assert.Equal(t, 20, list.Page.Limit)

	list, err = f.query.ListInflows(ctx, dto.MovementListRequest{Product: "teclado"})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

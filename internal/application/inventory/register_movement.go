package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	"github.com/LeandroFernandess/SGE/internal/domain/inventory"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// RegisterMovementUseCase registra entradas y salidas de stock de forma transaccional.
// Dentro de una misma tx: bloquea la fila del producto (SELECT FOR UPDATE), valida disponibilidad
// (salidas), inserta el movimiento y aplica la regla del libro de stock sobre products.quantity.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	now          func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, supplierRepo repository.SupplierRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		now:          time.Now,
	}
}

// WithClock reemplaza el reloj de CreatedAt (tests).
func (uc *RegisterMovementUseCase) WithClock(now func() time.Time) *RegisterMovementUseCase {
	uc.now = now
	return uc
}

// RegisterInflow registra una entrada y suma la cantidad al stock del producto.
func (uc *RegisterMovementUseCase) RegisterInflow(ctx context.Context, in dto.CreateInflowRequest) (*dto.InflowResponse, error) {
	if in.ProductID == "" || in.SupplierID == "" || in.Quantity > inventory.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	inflow := &entity.Inflow{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		SupplierID:   in.SupplierID,
		Quantity:     in.Quantity,
		Description:  in.Description,
		CreatedAt:    uc.now().UTC(),
		SupplierName: supplier.Name,
	}
	var stock int
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inflowRepo repository.InflowRepository,
		_ repository.OutflowRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := inflowRepo.Create(ctx, inflow); err != nil {
			return err
		}
		inflow.ProductTitle = product.Title
		stock, err = applyLedger(ctx, productRepo, product, entity.MovementTypeInflow, in.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := toInflowResponse(inflow)
	out.ProductStock = &stock
	return out, nil
}

// RegisterOutflow registra una salida. Si la cantidad supera el stock disponible devuelve
// *domain.InsufficientStockError y no persiste nada.
func (uc *RegisterMovementUseCase) RegisterOutflow(ctx context.Context, in dto.CreateOutflowRequest) (*dto.OutflowResponse, error) {
	if in.ProductID == "" || in.Quantity > inventory.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}

	outflow := &entity.Outflow{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Description: in.Description,
		CreatedAt:   uc.now().UTC(),
	}
	var stock int
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.InflowRepository,
		outflowRepo repository.OutflowRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if err := inventory.CheckAvailability(product, in.Quantity); err != nil {
			return err
		}
		if err := outflowRepo.Create(ctx, outflow); err != nil {
			return err
		}
		outflow.ProductTitle = product.Title
		stock, err = applyLedger(ctx, productRepo, product, entity.MovementTypeOutflow, in.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := toOutflowResponse(outflow)
	out.ProductStock = &stock
	return out, nil
}

// applyLedger ejecuta la única escritura extra por movimiento: el ajuste de products.quantity.
// Cantidades <= 0 no generan escritura; un stock resultante fuera de rango aborta la tx con ErrInvalidInput.
func applyLedger(ctx context.Context, productRepo repository.ProductRepository, product *entity.Product, movementType string, quantity int) (int, error) {
	delta := inventory.LedgerDelta(movementType, quantity)
	if delta == 0 {
		return product.Quantity, nil
	}
	if _, err := inventory.ApplyDelta(product.Quantity, delta); err != nil {
		return product.Quantity, err
	}
	return productRepo.AdjustQuantity(ctx, product.ID, delta)
}

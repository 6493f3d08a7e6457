package inventory

import (
	"math"

	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
)

// LedgerDelta devuelve la variación de stock que produce un movimiento (servicio de dominio).
// Entrada: +quantity. Salida: -quantity. Cantidades <= 0 no alteran el stock.
func LedgerDelta(movementType string, quantity int) int {
	if quantity <= 0 {
		return 0
	}
	switch movementType {
	case entity.MovementTypeInflow:
		return quantity
	case entity.MovementTypeOutflow:
		return -quantity
	default:
		return 0
	}
}

// MaxQuantity tope de products.quantity (columna INTEGER).
const MaxQuantity = math.MaxInt32

// ApplyDelta devuelve el stock resultante de aplicar delta a current.
// Si el resultado queda fuera de [0, MaxQuantity] devuelve domain.ErrInvalidInput y no hay que escribir nada.
func ApplyDelta(current, delta int) (int, error) {
	if delta > MaxQuantity || delta < -MaxQuantity {
		return current, domain.ErrInvalidInput
	}
	next := current + delta
	if next < 0 || next > MaxQuantity {
		return current, domain.ErrInvalidInput
	}
	return next, nil
}

// CheckAvailability valida que una salida de requested unidades no supere el stock del producto.
func CheckAvailability(product *entity.Product, requested int) error {
	if product == nil {
		return domain.ErrNotFound
	}
	if requested > product.Quantity {
		return &domain.InsufficientStockError{
			ProductTitle: product.Title,
			Available:    product.Quantity,
			Requested:    requested,
		}
	}
	return nil
}

package inventory

import (
	"context"

	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback: ni el movimiento ni el ajuste de stock quedan persistidos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inflowRepo repository.InflowRepository,
		outflowRepo repository.OutflowRepository,
	) error) error
}

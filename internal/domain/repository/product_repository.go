package repository

import (
	"context"

	"github.com/LeandroFernandess/SGE/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// Update actualiza los datos del catálogo. Nunca modifica Quantity.
	Update(ctx context.Context, product *entity.Product) error
	// AdjustQuantity suma delta (positivo o negativo) al stock y devuelve el stock resultante.
	AdjustQuantity(ctx context.Context, id string, delta int) (int, error)
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int, error)
	// Delete devuelve domain.ErrInUse si hay movimientos que referencian el producto.
	Delete(ctx context.Context, id string) error
}

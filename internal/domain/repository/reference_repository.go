package repository

import (
	"context"

	"github.com/LeandroFernandess/SGE/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
// Delete devuelve domain.ErrInUse si algún producto referencia la categoría.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, filter entity.NameFilter) ([]*entity.Category, int, error)
	Delete(ctx context.Context, id string) error
}

// BrandRepository define el puerto de persistencia para Brand.
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	List(ctx context.Context, filter entity.NameFilter) ([]*entity.Brand, int, error)
	Delete(ctx context.Context, id string) error
}

// SupplierRepository define el puerto de persistencia para Supplier.
// Delete devuelve domain.ErrInUse si alguna entrada referencia al proveedor.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	List(ctx context.Context, filter entity.NameFilter) ([]*entity.Supplier, int, error)
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"

	"github.com/LeandroFernandess/SGE/internal/domain/entity"
)

// InflowRepository define el puerto de persistencia para entradas. Solo inserción y lectura.
type InflowRepository interface {
	Create(ctx context.Context, inflow *entity.Inflow) error
	GetByID(ctx context.Context, id string) (*entity.Inflow, error)
	List(ctx context.Context, filter entity.MovementFilter) ([]*entity.Inflow, int, error)
}

// OutflowRepository define el puerto de persistencia para salidas. Solo inserción y lectura.
type OutflowRepository interface {
	Create(ctx context.Context, outflow *entity.Outflow) error
	GetByID(ctx context.Context, id string) (*entity.Outflow, error)
	List(ctx context.Context, filter entity.MovementFilter) ([]*entity.Outflow, int, error)
}

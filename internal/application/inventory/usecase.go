package inventory

import (
	"context"

	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// MovementQueryUseCase consultas de entradas y salidas (solo lectura).
type MovementQueryUseCase struct {
	inflowRepo  repository.InflowRepository
	outflowRepo repository.OutflowRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(inflowRepo repository.InflowRepository, outflowRepo repository.OutflowRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{inflowRepo: inflowRepo, outflowRepo: outflowRepo}
}

// GetInflow obtiene una entrada por ID.
func (uc *MovementQueryUseCase) GetInflow(ctx context.Context, id string) (*dto.InflowResponse, error) {
	inflow, err := uc.inflowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inflow == nil {
		return nil, domain.ErrNotFound
	}
	return toInflowResponse(inflow), nil
}

// ListInflows lista entradas (más recientes primero), filtrando por título del producto.
func (uc *MovementQueryUseCase) ListInflows(ctx context.Context, in dto.MovementListRequest) (*dto.InflowListResponse, error) {
	in.DefaultPage()
	list, total, err := uc.inflowRepo.List(ctx, entity.MovementFilter{Product: in.Product, Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	items := make([]dto.InflowResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toInflowResponse(m))
	}
	return &dto.InflowListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// GetOutflow obtiene una salida por ID.
func (uc *MovementQueryUseCase) GetOutflow(ctx context.Context, id string) (*dto.OutflowResponse, error) {
	outflow, err := uc.outflowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if outflow == nil {
		return nil, domain.ErrNotFound
	}
	return toOutflowResponse(outflow), nil
}

// ListOutflows lista salidas (más recientes primero), filtrando por título del producto.
func (uc *MovementQueryUseCase) ListOutflows(ctx context.Context, in dto.MovementListRequest) (*dto.OutflowListResponse, error) {
	in.DefaultPage()
	list, total, err := uc.outflowRepo.List(ctx, entity.MovementFilter{Product: in.Product, Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	items := make([]dto.OutflowResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toOutflowResponse(m))
	}
	return &dto.OutflowListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

func toInflowResponse(m *entity.Inflow) *dto.InflowResponse {
	return &dto.InflowResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductTitle: m.ProductTitle,
		SupplierID:   m.SupplierID,
		SupplierName: m.SupplierName,
		Quantity:     m.Quantity,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

func toOutflowResponse(m *entity.Outflow) *dto.OutflowResponse {
	return &dto.OutflowResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductTitle: m.ProductTitle,
		Quantity:     m.Quantity,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

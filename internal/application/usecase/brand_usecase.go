package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// BrandUseCase casos de uso CRUD para marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una marca.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.ReferenceRequest) (*dto.ReferenceResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	c := &entity.Brand{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toBrandResponse(c), nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(ctx context.Context, id string) (*dto.ReferenceResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toBrandResponse(c), nil
}

// Update reemplaza nombre y descripción.
func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.ReferenceRequest) (*dto.ReferenceResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = name
	c.Description = in.Description
	c.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toBrandResponse(c), nil
}

// List lista marcas ordenadas por nombre.
func (uc *BrandUseCase) List(ctx context.Context, in dto.ReferenceListRequest) (*dto.ReferenceListResponse, error) {
	in.DefaultPage()
	list, total, err := uc.repo.List(ctx, entity.NameFilter{Name: in.Name, Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenceResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toBrandResponse(c))
	}
	return &dto.ReferenceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Delete elimina una marca. Devuelve domain.ErrInUse si tiene productos.
func (uc *BrandUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toBrandResponse(c *entity.Brand) *dto.ReferenceResponse {
	return &dto.ReferenceResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

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

// ProductUseCase casos de uso CRUD para productos. Quantity se maneja solo vía entradas y salidas.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, brandRepo repository.BrandRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, brandRepo: brandRepo}
}

// Create crea un nuevo producto. Quantity inicia en 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(ctx, in.CategoryID, in.BrandID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Title:        title,
		CategoryID:   in.CategoryID,
		BrandID:      in.BrandID,
		Description:  in.Description,
		SerieNumber:  in.SerieNumber,
		CostPrice:    in.CostPrice.Round(2),
		SellingPrice: in.SellingPrice.Round(2),
		Quantity:     0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar Quantity.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Title = title
	}
	categoryID, brandID := product.CategoryID, product.BrandID
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	if in.BrandID != nil {
		brandID = *in.BrandID
	}
	if categoryID != product.CategoryID || brandID != product.BrandID {
		if err := uc.checkRefs(ctx, categoryID, brandID); err != nil {
			return nil, err
		}
		product.CategoryID, product.BrandID = categoryID, brandID
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SerieNumber != nil {
		product.SerieNumber = *in.SerieNumber
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = in.CostPrice.Round(2)
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = in.SellingPrice.Round(2)
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	list, total, err := uc.repo.List(ctx, entity.ProductFilter{
		Title:       in.Title,
		SerieNumber: in.SerieNumber,
		Category:    in.Category,
		Brand:       in.Brand,
		Limit:       in.Limit,
		Offset:      in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Delete elimina un producto. Devuelve domain.ErrInUse si tiene movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) checkRefs(ctx context.Context, categoryID, brandID string) error {
	if categoryID == "" || brandID == "" {
		return domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	brand, err := uc.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		CategoryID:   p.CategoryID,
		BrandID:      p.BrandID,
		Description:  p.Description,
		SerieNumber:  p.SerieNumber,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		Quantity:     p.Quantity,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El stock inicia en 0.
type CreateProductRequest struct {
	Title        string          `json:"title" validate:"required,min=1,max=500"`
	CategoryID   string          `json:"category_id" validate:"required"`
	BrandID      string          `json:"brand_id" validate:"required"`
	Description  string          `json:"description"`
	SerieNumber  string          `json:"serie_number" validate:"max=200"`
	CostPrice    decimal.Decimal `json:"cost_price" validate:"min=0"`
	SellingPrice decimal.Decimal `json:"selling_price" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity).
type UpdateProductRequest struct {
	Title        *string          `json:"title" validate:"omitempty,min=1,max=500"`
	CategoryID   *string          `json:"category_id" validate:"omitempty,min=1"`
	BrandID      *string          `json:"brand_id" validate:"omitempty,min=1"`
	Description  *string          `json:"description"`
	SerieNumber  *string          `json:"serie_number" validate:"omitempty,max=200"`
	CostPrice    *decimal.Decimal `json:"cost_price" validate:"omitempty,min=0"`
	SellingPrice *decimal.Decimal `json:"selling_price" validate:"omitempty,min=0"`
}

// ProductListRequest filtros del listado de productos.
type ProductListRequest struct {
	Title       string `query:"title"`
	SerieNumber string `query:"serie_number"`
	Category    string `query:"category"`
	Brand       string `query:"brand"`
	PageRequest
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	CategoryID   string          `json:"category_id"`
	BrandID      string          `json:"brand_id"`
	Description  string          `json:"description"`
	SerieNumber  string          `json:"serie_number"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     int             `json:"quantity"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

package dto

import "time"

// CreateInflowRequest entrada para registrar una entrada de stock.
type CreateInflowRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	SupplierID  string `json:"supplier_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0,lte=2147483647"`
	Description string `json:"description"`
}

// CreateOutflowRequest entrada para registrar una salida (venta).
type CreateOutflowRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0,lte=2147483647"`
	Description string `json:"description"`
}

// MovementListRequest filtra entradas/salidas por título del producto.
type MovementListRequest struct {
	Product string `query:"product"`
	PageRequest
}

// InflowResponse salida de una entrada. ProductStock (stock resultante) solo viene en la respuesta de creación.
type InflowResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductTitle string    `json:"product_title,omitempty"`
	SupplierID   string    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name,omitempty"`
	Quantity     int       `json:"quantity"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	ProductStock *int      `json:"product_stock,omitempty"`
}

// OutflowResponse salida de una salida de stock.
type OutflowResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductTitle string    `json:"product_title,omitempty"`
	Quantity     int       `json:"quantity"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	ProductStock *int      `json:"product_stock,omitempty"`
}

// InflowListResponse lista paginada de entradas.
type InflowListResponse struct {
	Items []InflowResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// OutflowListResponse lista paginada de salidas.
type OutflowListResponse struct {
	Items []OutflowResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

package dto

import "time"

// ReferenceRequest entrada para crear o actualizar una categoría, marca o proveedor.
type ReferenceRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// ReferenceListRequest filtros del listado de categorías, marcas y proveedores.
type ReferenceListRequest struct {
	Name string `query:"name"`
	PageRequest
}

// ReferenceResponse salida de una categoría, marca o proveedor.
type ReferenceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReferenceListResponse lista paginada.
type ReferenceListResponse struct {
	Items []ReferenceResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

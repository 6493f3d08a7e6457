package entity

import "time"

// Category representa una categoría de productos.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Brand representa una marca de productos.
type Brand struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Supplier representa un proveedor; las entradas de stock lo referencian.
type Supplier struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NameFilter filtro por nombre (subcadena, sin distinguir mayúsculas) con paginación.
type NameFilter struct {
	Name   string
	Limit  int
	Offset int
}

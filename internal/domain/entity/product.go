package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Quantity es el stock disponible desnormalizado: solo lo modifican las entradas y salidas.
type Product struct {
	ID           string
	Title        string
	CategoryID   string
	BrandID      string
	Description  string
	SerieNumber  string
	CostPrice    decimal.Decimal // precio de costo (2 decimales)
	SellingPrice decimal.Decimal // precio de venta (2 decimales)
	Quantity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductFilter filtros del listado de productos. Category y Brand filtran por nombre exacto.
type ProductFilter struct {
	Title       string
	SerieNumber string
	Category    string
	Brand       string
	Limit       int
	Offset      int
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductTotals valorización del inventario actual.
type ProductTotals struct {
	CostValue    decimal.Decimal // Σ(cost_price × quantity)
	SellingValue decimal.Decimal // Σ(selling_price × quantity)
	Quantity     int64           // Σ quantity
}

// SalesTotals acumulado histórico de salidas.
type SalesTotals struct {
	Count     int64           // número de salidas
	UnitsSold int64           // Σ outflow.quantity
	Value     decimal.Decimal // Σ(outflow.quantity × selling_price)
	Cost      decimal.Decimal // Σ(outflow.quantity × cost_price)
}

// DailySales ventas de un día calendario. Day es la medianoche del día en la zona consultada.
type DailySales struct {
	Day   time.Time
	Value decimal.Decimal
	Count int64
}

// LabelCount conteo de productos asociado a un nombre (categoría o marca).
type LabelCount struct {
	Name  string
	Count int64
}

// StockLine posición de stock de un producto, con nombres de categoría y marca.
type StockLine struct {
	ProductID    string
	Title        string
	Category     string
	Brand        string
	Quantity     int
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
}

// MetricsRepository consultas de solo lectura para el dashboard.
type MetricsRepository interface {
	GetProductTotals(ctx context.Context) (ProductTotals, error)
	GetSalesTotals(ctx context.Context) (SalesTotals, error)
	// GetDailySales agrupa las salidas creadas en [from, to) por día calendario en from.Location().
	// Los días sin salidas no aparecen en el resultado.
	GetDailySales(ctx context.Context, from, to time.Time) ([]DailySales, error)
	// CountProductsByCategory incluye todas las categorías, también las que tienen 0 productos.
	CountProductsByCategory(ctx context.Context) ([]LabelCount, error)
	CountProductsByBrand(ctx context.Context) ([]LabelCount, error)
	// StockPosition lista todos los productos ordenados por título.
	StockPosition(ctx context.Context) ([]StockLine, error)
}

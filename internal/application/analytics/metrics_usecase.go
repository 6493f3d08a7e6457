// Package analytics contiene el agregador de métricas del dashboard y los reportes derivados.
// Todas las métricas se recalculan en cada llamada; no hay caché.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// DailyWindow cantidad de días calendario de las series diarias (incluye hoy).
const DailyWindow = 7

const dateLayout = "2006-01-02"

// MetricsUseCase agregador de métricas (solo lectura).
type MetricsUseCase struct {
	repo  repository.MetricsRepository
	money *MoneyFormatter
	loc   *time.Location
	now   func() time.Time
}

// NewMetricsUseCase construye el caso de uso. loc define qué es un "día calendario".
func NewMetricsUseCase(repo repository.MetricsRepository, money *MoneyFormatter, loc *time.Location) *MetricsUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &MetricsUseCase{repo: repo, money: money, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *MetricsUseCase) WithClock(now func() time.Time) *MetricsUseCase {
	uc.now = now
	return uc
}

// ProductMetrics valorización del inventario: costo, venta, cantidad y ganancia potencial.
func (uc *MetricsUseCase) ProductMetrics(ctx context.Context) (*dto.ProductMetricsResponse, error) {
	t, err := uc.repo.GetProductTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductMetricsResponse{
		TotalCostPrice:    uc.money.Format(t.CostValue),
		TotalSellingPrice: uc.money.Format(t.SellingValue),
		TotalQuantity:     t.Quantity,
		TotalProfit:       uc.money.Format(t.SellingValue.Sub(t.CostValue)),
	}, nil
}

// SalesMetrics acumulado histórico de salidas valorizadas a los precios actuales del producto.
func (uc *MetricsUseCase) SalesMetrics(ctx context.Context) (*dto.SalesMetricsResponse, error) {
	t, err := uc.repo.GetSalesTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SalesMetricsResponse{
		TotalSales:       t.Count,
		TotalProductSold: t.UnitsSold,
		TotalSalesValue:  uc.money.Format(t.Value),
		TotalSalesProfit: uc.money.Format(t.Value.Sub(t.Cost)),
	}, nil
}

// DailySalesValue valor vendido por día en los últimos 7 días (más antiguo primero, días sin ventas en 0).
func (uc *MetricsUseCase) DailySalesValue(ctx context.Context) (*dto.DailySalesValueResponse, error) {
	dates, byDay, err := uc.dailySales(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(dates))
	for i, d := range dates {
		if row, ok := byDay[d]; ok {
			values[i] = row.Value.InexactFloat64()
		}
	}
	return &dto.DailySalesValueResponse{Dates: dates, Values: values}, nil
}

// DailySalesQuantity número de salidas por día en los últimos 7 días.
func (uc *MetricsUseCase) DailySalesQuantity(ctx context.Context) (*dto.DailySalesQuantityResponse, error) {
	dates, byDay, err := uc.dailySales(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]int64, len(dates))
	for i, d := range dates {
		values[i] = byDay[d].Count
	}
	return &dto.DailySalesQuantityResponse{Dates: dates, Values: values}, nil
}

// ProductCountByCategory productos por nombre de categoría, incluidas las vacías.
func (uc *MetricsUseCase) ProductCountByCategory(ctx context.Context) (map[string]int64, error) {
	rows, err := uc.repo.CountProductsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// ProductCountByBrand productos por nombre de marca, incluidas las vacías.
func (uc *MetricsUseCase) ProductCountByBrand(ctx context.Context) (map[string]int64, error) {
	rows, err := uc.repo.CountProductsByBrand(ctx)
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// Dashboard calcula los seis bloques de métricas en una sola respuesta.
func (uc *MetricsUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	products, err := uc.ProductMetrics(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.SalesMetrics(ctx)
	if err != nil {
		return nil, err
	}
	dailyValue, err := uc.DailySalesValue(ctx)
	if err != nil {
		return nil, err
	}
	dailyQty, err := uc.DailySalesQuantity(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.ProductCountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	byBrand, err := uc.ProductCountByBrand(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		ProductMetrics:         *products,
		SalesMetrics:           *sales,
		DailySalesData:         *dailyValue,
		DailySalesQuantityData: *dailyQty,
		ProductCountByCategory: byCategory,
		ProductCountByBrand:    byBrand,
	}, nil
}

// dailySales devuelve las 7 fechas de la ventana y las filas del repositorio indexadas por fecha.
func (uc *MetricsUseCase) dailySales(ctx context.Context) ([]string, map[string]repository.DailySales, error) {
	now := uc.now().In(uc.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	from := today.AddDate(0, 0, -(DailyWindow - 1))
	to := today.AddDate(0, 0, 1)

	rows, err := uc.repo.GetDailySales(ctx, from, to)
	if err != nil {
		return nil, nil, err
	}
	byDay := make(map[string]repository.DailySales, len(rows))
	for _, r := range rows {
		key := r.Day.Format(dateLayout)
		cur, ok := byDay[key]
		if !ok {
			cur = repository.DailySales{Day: r.Day, Value: decimal.Zero}
		}
		cur.Value = cur.Value.Add(r.Value)
		cur.Count += r.Count
		byDay[key] = cur
	}
	dates := make([]string, DailyWindow)
	for i := range dates {
		dates[i] = from.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates, byDay, nil
}

// toCountMap nombres repetidos suman sus conteos.
func toCountMap(rows []repository.LabelCount) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Name] += r.Count
	}
	return out
}

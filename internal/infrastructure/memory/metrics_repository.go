package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

type metricsRepo struct{ access }

func (r *metricsRepo) GetProductTotals(_ context.Context) (repository.ProductTotals, error) {
	out := repository.ProductTotals{CostValue: decimal.Zero, SellingValue: decimal.Zero}
	err := r.read(func(st *state) error {
		for _, p := range st.products {
			q := decimal.NewFromInt(int64(p.Quantity))
			out.CostValue = out.CostValue.Add(p.CostPrice.Mul(q))
			out.SellingValue = out.SellingValue.Add(p.SellingPrice.Mul(q))
			out.Quantity += int64(p.Quantity)
		}
		return nil
	})
	return out, err
}

func (r *metricsRepo) GetSalesTotals(_ context.Context) (repository.SalesTotals, error) {
	out := repository.SalesTotals{Value: decimal.Zero, Cost: decimal.Zero}
	err := r.read(func(st *state) error {
		for _, m := range st.outflows {
			p := st.products[m.ProductID]
			q := decimal.NewFromInt(int64(m.Quantity))
			out.Count++
			out.UnitsSold += int64(m.Quantity)
			out.Value = out.Value.Add(p.SellingPrice.Mul(q))
			out.Cost = out.Cost.Add(p.CostPrice.Mul(q))
		}
		return nil
	})
	return out, err
}

func (r *metricsRepo) GetDailySales(_ context.Context, from, to time.Time) ([]repository.DailySales, error) {
	loc := from.Location()
	byDay := map[time.Time]*repository.DailySales{}
	err := r.read(func(st *state) error {
		for _, m := range st.outflows {
			if m.CreatedAt.Before(from) || !m.CreatedAt.Before(to) {
				continue
			}
			y, mo, d := m.CreatedAt.In(loc).Date()
			day := time.Date(y, mo, d, 0, 0, 0, 0, loc)
			row, ok := byDay[day]
			if !ok {
				row = &repository.DailySales{Day: day, Value: decimal.Zero}
				byDay[day] = row
			}
			q := decimal.NewFromInt(int64(m.Quantity))
			row.Value = row.Value.Add(st.products[m.ProductID].SellingPrice.Mul(q))
			row.Count++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]repository.DailySales, 0, len(byDay))
	for _, row := range byDay {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (r *metricsRepo) CountProductsByCategory(_ context.Context) ([]repository.LabelCount, error) {
	var out []repository.LabelCount
	err := r.read(func(st *state) error {
		counts := make(map[string]int64, len(st.categories))
		for _, p := range st.products {
			counts[p.CategoryID]++
		}
		for id, c := range st.categories {
			out = append(out, repository.LabelCount{Name: c.Name, Count: counts[id]})
		}
		return nil
	})
	sortLabels(out)
	return out, err
}

func (r *metricsRepo) CountProductsByBrand(_ context.Context) ([]repository.LabelCount, error) {
	var out []repository.LabelCount
	err := r.read(func(st *state) error {
		counts := make(map[string]int64, len(st.brands))
		for _, p := range st.products {
			counts[p.BrandID]++
		}
		for id, b := range st.brands {
			out = append(out, repository.LabelCount{Name: b.Name, Count: counts[id]})
		}
		return nil
	})
	sortLabels(out)
	return out, err
}

func (r *metricsRepo) StockPosition(_ context.Context) ([]repository.StockLine, error) {
	var out []repository.StockLine
	err := r.read(func(st *state) error {
		for _, p := range st.products {
			out = append(out, repository.StockLine{
				ProductID:    p.ID,
				Title:        p.Title,
				Category:     st.categories[p.CategoryID].Name,
				Brand:        st.brands[p.BrandID].Name,
				Quantity:     p.Quantity,
				CostPrice:    p.CostPrice,
				SellingPrice: p.SellingPrice,
			})
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, err
}

func sortLabels(rows []repository.LabelCount) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
}

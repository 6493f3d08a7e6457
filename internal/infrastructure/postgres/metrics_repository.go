package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo consultas de agregación read-only. Las sumas se hacen en NUMERIC y se escanean a decimal.Decimal.
type MetricsRepo struct {
	q Querier
}

// NewMetricsRepository construye el adaptador.
func NewMetricsRepository(q Querier) *MetricsRepo {
	return &MetricsRepo{q: q}
}

func (r *MetricsRepo) GetProductTotals(ctx context.Context) (repository.ProductTotals, error) {
	var t repository.ProductTotals
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(cost_price * quantity), 0),
		       COALESCE(SUM(selling_price * quantity), 0),
		       COALESCE(SUM(quantity), 0)
		FROM products`,
	).Scan(&t.CostValue, &t.SellingValue, &t.Quantity)
	if err != nil {
		return t, fmt.Errorf("product totals: %w", err)
	}
	return t, nil
}

func (r *MetricsRepo) GetSalesTotals(ctx context.Context) (repository.SalesTotals, error) {
	var t repository.SalesTotals
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(o.quantity), 0),
		       COALESCE(SUM(o.quantity * p.selling_price), 0),
		       COALESCE(SUM(o.quantity * p.cost_price), 0)
		FROM outflows o
		JOIN products p ON p.id = o.product_id`,
	).Scan(&t.Count, &t.UnitsSold, &t.Value, &t.Cost)
	if err != nil {
		return t, fmt.Errorf("sales totals: %w", err)
	}
	return t, nil
}

// GetDailySales agrupa por fecha local (AT TIME ZONE) para que el día calendario siga METRICS_TIMEZONE.
func (r *MetricsRepo) GetDailySales(ctx context.Context, from, to time.Time) ([]repository.DailySales, error) {
	loc := from.Location()
	rows, err := r.q.Query(ctx, `
		SELECT (o.created_at AT TIME ZONE $3)::date AS day,
		       SUM(o.quantity * p.selling_price),
		       COUNT(*)
		FROM outflows o
		JOIN products p ON p.id = o.product_id
		WHERE o.created_at >= $1 AND o.created_at < $2
		GROUP BY day
		ORDER BY day`,
		from, to, loc.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()
	var out []repository.DailySales
	for rows.Next() {
		var d repository.DailySales
		var day time.Time
		if err := rows.Scan(&day, &d.Value, &d.Count); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		d.Day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *MetricsRepo) CountProductsByCategory(ctx context.Context) ([]repository.LabelCount, error) {
	return r.countBy(ctx, `
		SELECT c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name`)
}

func (r *MetricsRepo) CountProductsByBrand(ctx context.Context) ([]repository.LabelCount, error) {
	return r.countBy(ctx, `
		SELECT b.name, COUNT(p.id)
		FROM brands b
		LEFT JOIN products p ON p.brand_id = b.id
		GROUP BY b.id, b.name
		ORDER BY b.name`)
}

func (r *MetricsRepo) countBy(ctx context.Context, query string) ([]repository.LabelCount, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	defer rows.Close()
	var out []repository.LabelCount
	for rows.Next() {
		var lc repository.LabelCount
		if err := rows.Scan(&lc.Name, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

func (r *MetricsRepo) StockPosition(ctx context.Context) ([]repository.StockLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.title, c.name, b.name, p.quantity, p.cost_price, p.selling_price
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN brands b ON b.id = p.brand_id
		ORDER BY p.title, p.id`)
	if err != nil {
		return nil, fmt.Errorf("stock position: %w", err)
	}
	defer rows.Close()
	var out []repository.StockLine
	for rows.Next() {
		var l repository.StockLine
		if err := rows.Scan(&l.ProductID, &l.Title, &l.Category, &l.Brand, &l.Quantity, &l.CostPrice, &l.SellingPrice); err != nil {
			return nil, fmt.Errorf("scan stock line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

package memory

import (
	"context"

	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	"github.com/LeandroFernandess/SGE/internal/domain/inventory"
)

type productRepo struct{ access }

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	return r.write(func(st *state) error {
		if _, ok := st.products[p.ID]; ok {
			return domain.ErrDuplicate
		}
		if err := checkProductRefs(st, p); err != nil {
			return err
		}
		st.products[p.ID] = *p
		return nil
	})
}

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.read(func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetForUpdate dentro de TxRunner el lock exclusivo del Store ya serializa la fila.
func (r *productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	return r.write(func(st *state) error {
		cur, ok := st.products[p.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if err := checkProductRefs(st, p); err != nil {
			return err
		}
		next := *p
		next.Quantity = cur.Quantity
		next.CreatedAt = cur.CreatedAt
		st.products[p.ID] = next
		return nil
	})
}

func (r *productRepo) AdjustQuantity(_ context.Context, id string, delta int) (int, error) {
	var qty int
	err := r.write(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		next, err := inventory.ApplyDelta(p.Quantity, delta)
		if err != nil {
			return err
		}
		p.Quantity = next
		st.products[id] = p
		qty = p.Quantity
		return nil
	})
	return qty, err
}

func (r *productRepo) List(_ context.Context, f entity.ProductFilter) ([]*entity.Product, int, error) {
	var out []*entity.Product
	var total int
	err := r.read(func(st *state) error {
		list := make([]*entity.Product, 0, len(st.products))
		for _, p := range st.products {
			if !containsFold(p.Title, f.Title) || !containsFold(p.SerieNumber, f.SerieNumber) {
				continue
			}
			if f.Category != "" && st.categories[p.CategoryID].Name != f.Category {
				continue
			}
			if f.Brand != "" && st.brands[p.BrandID].Name != f.Brand {
				continue
			}
			p := p
			list = append(list, &p)
		}
		sortByName(list, func(p *entity.Product) string { return p.Title })
		total = len(list)
		out = page(list, f.Limit, f.Offset)
		return nil
	})
	return out, total, err
}

func (r *productRepo) Delete(_ context.Context, id string) error {
	return r.write(func(st *state) error {
		if _, ok := st.products[id]; !ok {
			return domain.ErrNotFound
		}
		for _, m := range st.inflows {
			if m.ProductID == id {
				return domain.ErrInUse
			}
		}
		for _, m := range st.outflows {
			if m.ProductID == id {
				return domain.ErrInUse
			}
		}
		delete(st.products, id)
		return nil
	})
}

func checkProductRefs(st *state, p *entity.Product) error {
	if _, ok := st.categories[p.CategoryID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := st.brands[p.BrandID]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

package memory

import (
	"context"

	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
)

type categoryRepo struct{ access }

func (r *categoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.write(func(st *state) error {
		if _, ok := st.categories[c.ID]; ok {
			return domain.ErrDuplicate
		}
		st.categories[c.ID] = *c
		return nil
	})
}

func (r *categoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	var out *entity.Category
	err := r.read(func(st *state) error {
		if c, ok := st.categories[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *categoryRepo) Update(_ context.Context, c *entity.Category) error {
	return r.write(func(st *state) error {
		cur, ok := st.categories[c.ID]
		if !ok {
			return domain.ErrNotFound
		}
		cur.Name, cur.Description, cur.UpdatedAt = c.Name, c.Description, c.UpdatedAt
		st.categories[c.ID] = cur
		return nil
	})
}

func (r *categoryRepo) List(_ context.Context, f entity.NameFilter) ([]*entity.Category, int, error) {
	var out []*entity.Category
	var total int
	err := r.read(func(st *state) error {
		list := make([]*entity.Category, 0, len(st.categories))
		for _, c := range st.categories {
			if containsFold(c.Name, f.Name) {
				c := c
				list = append(list, &c)
			}
		}
		sortByName(list, func(c *entity.Category) string { return c.Name })
		total = len(list)
		out = page(list, f.Limit, f.Offset)
		return nil
	})
	return out, total, err
}

func (r *categoryRepo) Delete(_ context.Context, id string) error {
	return r.write(func(st *state) error {
		if _, ok := st.categories[id]; !ok {
			return domain.ErrNotFound
		}
		for _, p := range st.products {
			if p.CategoryID == id {
				return domain.ErrInUse
			}
		}
		delete(st.categories, id)
		return nil
	})
}

type brandRepo struct{ access }

func (r *brandRepo) Create(_ context.Context, b *entity.Brand) error {
	return r.write(func(st *state) error {
		if _, ok := st.brands[b.ID]; ok {
			return domain.ErrDuplicate
		}
		st.brands[b.ID] = *b
		return nil
	})
}

func (r *brandRepo) GetByID(_ context.Context, id string) (*entity.Brand, error) {
	var out *entity.Brand
	err := r.read(func(st *state) error {
		if b, ok := st.brands[id]; ok {
			out = &b
		}
		return nil
	})
	return out, err
}

func (r *brandRepo) Update(_ context.Context, b *entity.Brand) error {
	return r.write(func(st *state) error {
		cur, ok := st.brands[b.ID]
		if !ok {
			return domain.ErrNotFound
		}
		cur.Name, cur.Description, cur.UpdatedAt = b.Name, b.Description, b.UpdatedAt
		st.brands[b.ID] = cur
		return nil
	})
}

func (r *brandRepo) List(_ context.Context, f entity.NameFilter) ([]*entity.Brand, int, error) {
	var out []*entity.Brand
	var total int
	err := r.read(func(st *state) error {
		list := make([]*entity.Brand, 0, len(st.brands))
		for _, b := range st.brands {
			if containsFold(b.Name, f.Name) {
				b := b
				list = append(list, &b)
			}
		}
		sortByName(list, func(b *entity.Brand) string { return b.Name })
		total = len(list)
		out = page(list, f.Limit, f.Offset)
		return nil
	})
	return out, total, err
}

func (r *brandRepo) Delete(_ context.Context, id string) error {
	return r.write(func(st *state) error {
		if _, ok := st.brands[id]; !ok {
			return domain.ErrNotFound
		}
		for _, p := range st.products {
			if p.BrandID == id {
				return domain.ErrInUse
			}
		}
		delete(st.brands, id)
		return nil
	})
}

type supplierRepo struct{ access }

func (r *supplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	return r.write(func(st *state) error {
		if _, ok := st.suppliers[s.ID]; ok {
			return domain.ErrDuplicate
		}
		st.suppliers[s.ID] = *s
		return nil
	})
}

func (r *supplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.read(func(st *state) error {
		if s, ok := st.suppliers[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *supplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	return r.write(func(st *state) error {
		cur, ok := st.suppliers[s.ID]
		if !ok {
			return domain.ErrNotFound
		}
		cur.Name, cur.Description, cur.UpdatedAt = s.Name, s.Description, s.UpdatedAt
		st.suppliers[s.ID] = cur
		return nil
	})
}

func (r *supplierRepo) List(_ context.Context, f entity.NameFilter) ([]*entity.Supplier, int, error) {
	var out []*entity.Supplier
	var total int
	err := r.read(func(st *state) error {
		list := make([]*entity.Supplier, 0, len(st.suppliers))
		for _, s := range st.suppliers {
			if containsFold(s.Name, f.Name) {
				s := s
				list = append(list, &s)
			}
		}
		sortByName(list, func(s *entity.Supplier) string { return s.Name })
		total = len(list)
		out = page(list, f.Limit, f.Offset)
		return nil
	})
	return out, total, err
}

func (r *supplierRepo) Delete(_ context.Context, id string) error {
	return r.write(func(st *state) error {
		if _, ok := st.suppliers[id]; !ok {
			return domain.ErrNotFound
		}
		for _, m := range st.inflows {
			if m.SupplierID == id {
				return domain.ErrInUse
			}
		}
		delete(st.suppliers, id)
		return nil
	})
}

package memory

import (
	"context"

	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
)

type inflowRepo struct{ access }

func (r *inflowRepo) Create(_ context.Context, m *entity.Inflow) error {
	return r.write(func(st *state) error {
		if _, ok := st.products[m.ProductID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := st.suppliers[m.SupplierID]; !ok {
			return domain.ErrNotFound
		}
		row := *m
		row.ProductTitle, row.SupplierName = "", ""
		st.inflows = append(st.inflows, row)
		return nil
	})
}

func (r *inflowRepo) GetByID(_ context.Context, id string) (*entity.Inflow, error) {
	var out *entity.Inflow
	err := r.read(func(st *state) error {
		for _, m := range st.inflows {
			if m.ID == id {
				m := joinInflow(st, m)
				out = &m
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *inflowRepo) List(_ context.Context, f entity.MovementFilter) ([]*entity.Inflow, int, error) {
	var out []*entity.Inflow
	var total int
	err := r.read(func(st *state) error {
		list := make([]*entity.Inflow, 0, len(st.inflows))
		for i := len(st.inflows) - 1; i >= 0; i-- {
			m := joinInflow(st, st.inflows[i])
			if containsFold(m.ProductTitle, f.Product) {
				list = append(list, &m)
			}
		}
		total = len(list)
		out = page(list, f.Limit, f.Offset)
		return nil
	})
	return out, total, err
}

func joinInflow(st *state, m entity.Inflow) entity.Inflow {
	m.ProductTitle = st.products[m.ProductID].Title
	m.SupplierName = st.suppliers[m.SupplierID].Name
	return m
}

type outflowRepo struct{ access }

func (r *outflowRepo) Create(_ context.Context, m *entity.Outflow) error {
	return r.write(func(st *state) error {
		if _, ok := st.products[m.ProductID]; !ok {
			return domain.ErrNotFound
		}
		row := *m
		row.ProductTitle = ""
		st.outflows = append(st.outflows, row)
		return nil
	})
}

func (r *outflowRepo) GetByID(_ context.Context, id string) (*entity.Outflow, error) {
	var out *entity.Outflow
	err := r.read(func(st *state) error {
		for _, m := range st.outflows {
			if m.ID == id {
				m.ProductTitle = st.products[m.ProductID].Title
				out = &m
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *outflowRepo) List(_ context.Context, f entity.MovementFilter) ([]*entity.Outflow, int, error) {
	var out []*entity.Outflow
	var total int
	err := r.read(func(st *state) error {
		list := make([]*entity.Outflow, 0, len(st.outflows))
		for i := len(st.outflows) - 1; i >= 0; i-- {
			m := st.outflows[i]
			m.ProductTitle = st.products[m.ProductID].Title
			if containsFold(m.ProductTitle, f.Product) {
				list = append(list, &m)
			}
		}
		total = len(list)
		out = page(list, f.Limit, f.Offset)
		return nil
	})
	return out, total, err
}

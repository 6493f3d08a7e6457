package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

var (
	_ repository.InflowRepository  = (*InflowRepo)(nil)
	_ repository.OutflowRepository = (*OutflowRepo)(nil)
)

// InflowRepo persistencia de entradas (append-only).
type InflowRepo struct {
	q Querier
}

// NewInflowRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInflowRepository(q Querier) *InflowRepo {
	return &InflowRepo{q: q}
}

// Create inserta la entrada. No modifica el stock: eso lo hace el caso de uso en la misma tx.
func (r *InflowRepo) Create(ctx context.Context, m *entity.Inflow) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO inflows (id, product_id, supplier_id, quantity, description, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.ProductID, m.SupplierID, m.Quantity, m.Description, m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert inflow: %w", err)
	}
	return nil
}

const inflowSelect = `
	SELECT i.id, i.product_id, i.supplier_id, i.quantity, i.description, i.created_at, p.title, s.name
	FROM inflows i
	JOIN products p ON p.id = i.product_id
	JOIN suppliers s ON s.id = i.supplier_id`

// GetByID obtiene una entrada con título de producto y nombre de proveedor.
func (r *InflowRepo) GetByID(ctx context.Context, id string) (*entity.Inflow, error) {
	if !validID(id) {
		return nil, nil
	}
	m, err := scanInflow(r.q.QueryRow(ctx, inflowSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inflow: %w", err)
	}
	return m, nil
}

// List más recientes primero.
func (r *InflowRepo) List(ctx context.Context, f entity.MovementFilter) ([]*entity.Inflow, int, error) {
	pattern := likePattern(f.Product)
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM inflows i JOIN products p ON p.id = i.product_id WHERE p.title ILIKE $1`, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count inflows: %w", err)
	}
	rows, err := r.q.Query(ctx,
		inflowSelect+` WHERE p.title ILIKE $1 ORDER BY i.created_at DESC, i.id DESC LIMIT $2 OFFSET $3`,
		pattern, f.Limit, f.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list inflows: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inflow
	for rows.Next() {
		m, err := scanInflow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan inflow: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

func scanInflow(row pgx.Row) (*entity.Inflow, error) {
	var m entity.Inflow
	if err := row.Scan(&m.ID, &m.ProductID, &m.SupplierID, &m.Quantity, &m.Description, &m.CreatedAt, &m.ProductTitle, &m.SupplierName); err != nil {
		return nil, err
	}
	return &m, nil
}

// OutflowRepo persistencia de salidas (append-only).
type OutflowRepo struct {
	q Querier
}

// NewOutflowRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOutflowRepository(q Querier) *OutflowRepo {
	return &OutflowRepo{q: q}
}

func (r *OutflowRepo) Create(ctx context.Context, m *entity.Outflow) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO outflows (id, product_id, quantity, description, created_at) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.ProductID, m.Quantity, m.Description, m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert outflow: %w", err)
	}
	return nil
}

const outflowSelect = `
	SELECT o.id, o.product_id, o.quantity, o.description, o.created_at, p.title
	FROM outflows o
	JOIN products p ON p.id = o.product_id`

func (r *OutflowRepo) GetByID(ctx context.Context, id string) (*entity.Outflow, error) {
	if !validID(id) {
		return nil, nil
	}
	m, err := scanOutflow(r.q.QueryRow(ctx, outflowSelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outflow: %w", err)
	}
	return m, nil
}

func (r *OutflowRepo) List(ctx context.Context, f entity.MovementFilter) ([]*entity.Outflow, int, error) {
	pattern := likePattern(f.Product)
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM outflows o JOIN products p ON p.id = o.product_id WHERE p.title ILIKE $1`, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count outflows: %w", err)
	}
	rows, err := r.q.Query(ctx,
		outflowSelect+` WHERE p.title ILIKE $1 ORDER BY o.created_at DESC, o.id DESC LIMIT $2 OFFSET $3`,
		pattern, f.Limit, f.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list outflows: %w", err)
	}
	defer rows.Close()
	var list []*entity.Outflow
	for rows.Next() {
		m, err := scanOutflow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan outflow: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

func scanOutflow(row pgx.Row) (*entity.Outflow, error) {
	var m entity.Outflow
	if err := row.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Description, &m.CreatedAt, &m.ProductTitle); err != nil {
		return nil, err
	}
	return &m, nil
}

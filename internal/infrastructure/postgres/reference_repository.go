package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/LeandroFernandess/SGE/internal/domain"
	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// refRow fila común de categories, brands y suppliers (id, name, description, timestamps).
type refRow struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// refTable CRUD compartido por las tablas de referencia. table nunca proviene del usuario.
type refTable struct {
	q     Querier
	table string
}

func (t refTable) create(ctx context.Context, r refRow) error {
	_, err := t.q.Exec(ctx,
		`INSERT INTO `+t.table+` (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.Name, r.Description, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", t.table, err)
	}
	return nil
}

func (t refTable) get(ctx context.Context, id string) (*refRow, error) {
	if !validID(id) {
		return nil, nil
	}
	var r refRow
	err := t.q.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM `+t.table+` WHERE id = $1`, id,
	).Scan(&r.ID, &r.Name, &r.Description, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.table, err)
	}
	return &r, nil
}

func (t refTable) update(ctx context.Context, r refRow) error {
	cmd, err := t.q.Exec(ctx,
		`UPDATE `+t.table+` SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		r.ID, r.Name, r.Description, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// list filtra por nombre (subcadena, sin distinguir mayúsculas) y ordena por nombre.
func (t refTable) list(ctx context.Context, f entity.NameFilter) ([]refRow, int, error) {
	pattern := likePattern(f.Name)
	var total int
	if err := t.q.QueryRow(ctx, `SELECT COUNT(*) FROM `+t.table+` WHERE name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", t.table, err)
	}
	rows, err := t.q.Query(ctx,
		`SELECT id, name, description, created_at, updated_at FROM `+t.table+`
		WHERE name ILIKE $1 ORDER BY name, id LIMIT $2 OFFSET $3`,
		pattern, f.Limit, f.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", t.table, err)
	}
	defer rows.Close()
	var list []refRow
	for rows.Next() {
		var r refRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", t.table, err)
		}
		list = append(list, r)
	}
	return list, total, rows.Err()
}

// delete rechaza con domain.ErrInUse si la fila está referenciada (ON DELETE RESTRICT).
func (t refTable) delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := t.q.Exec(ctx, `DELETE FROM `+t.table+` WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete %s: %w", t.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Category ──────────────────────────────────────────────────────────────────

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct{ t refTable }

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{t: refTable{q: q, table: "categories"}}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return r.t.create(ctx, refRow(*c))
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	row, err := r.t.get(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	c := entity.Category(*row)
	return &c, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return r.t.update(ctx, refRow(*c))
}

func (r *CategoryRepo) List(ctx context.Context, f entity.NameFilter) ([]*entity.Category, int, error) {
	rows, total, err := r.t.list(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		c := entity.Category(row)
		out = append(out, &c)
	}
	return out, total, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }

// ── Brand ─────────────────────────────────────────────────────────────────────

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación de BrandRepository sobre PostgreSQL.
type BrandRepo struct{ t refTable }

// NewBrandRepository construye el adaptador.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{t: refTable{q: q, table: "brands"}}
}

func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	return r.t.create(ctx, refRow(*b))
}

func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	row, err := r.t.get(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	b := entity.Brand(*row)
	return &b, nil
}

func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	return r.t.update(ctx, refRow(*b))
}

func (r *BrandRepo) List(ctx context.Context, f entity.NameFilter) ([]*entity.Brand, int, error) {
	rows, total, err := r.t.list(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*entity.Brand, 0, len(rows))
	for _, row := range rows {
		b := entity.Brand(row)
		out = append(out, &b)
	}
	return out, total, nil
}

func (r *BrandRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }

// ── Supplier ──────────────────────────────────────────────────────────────────

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct{ t refTable }

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{t: refTable{q: q, table: "suppliers"}}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	return r.t.create(ctx, refRow(*s))
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	row, err := r.t.get(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	s := entity.Supplier(*row)
	return &s, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	return r.t.update(ctx, refRow(*s))
}

func (r *SupplierRepo) List(ctx context.Context, f entity.NameFilter) ([]*entity.Supplier, int, error) {
	rows, total, err := r.t.list(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*entity.Supplier, 0, len(rows))
	for _, row := range rows {
		s := entity.Supplier(row)
		out = append(out, &s)
	}
	return out, total, nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id string) error { return r.t.delete(ctx, id) }

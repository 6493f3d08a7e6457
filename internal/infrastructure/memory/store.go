// Package memory implementa los puertos de persistencia en memoria de proceso.
// Se usa con STORAGE_DRIVER=memory (desarrollo) y en los tests de casos de uso y HTTP.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/LeandroFernandess/SGE/internal/domain/entity"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// Store mantiene todas las tablas detrás de un único RWMutex.
// Las transacciones (TxRunner) toman el lock exclusivo y trabajan sobre una copia que solo
// reemplaza al estado vigente si fn termina sin error.
type Store struct {
	mu sync.RWMutex
	st *state
}

type state struct {
	categories map[string]entity.Category
	brands     map[string]entity.Brand
	suppliers  map[string]entity.Supplier
	products   map[string]entity.Product
	// movimientos en orden de inserción (append-only)
	inflows  []entity.Inflow
	outflows []entity.Outflow
}

func newState() *state {
	return &state{
		categories: map[string]entity.Category{},
		brands:     map[string]entity.Brand{},
		suppliers:  map[string]entity.Supplier{},
		products:   map[string]entity.Product{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.brands {
		c.brands[k] = v
	}
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	c.inflows = append([]entity.Inflow(nil), s.inflows...)
	c.outflows = append([]entity.Outflow(nil), s.outflows...)
	return c
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Ping siempre responde; existe para el health check.
func (s *Store) Ping(context.Context) error { return nil }

// access da a los repositorios acceso al estado: directo si ya están dentro de una tx
// (el lock lo tiene TxRunner), o tomando el lock del Store en caso contrario.
type access struct {
	store *Store
	tx    *state
}

func (a access) read(fn func(st *state) error) error {
	if a.tx != nil {
		return fn(a.tx)
	}
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	return fn(a.store.st)
}

func (a access) write(fn func(st *state) error) error {
	if a.tx != nil {
		return fn(a.tx)
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return fn(a.store.st)
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() repository.ProductRepository { return &productRepo{access{store: s}} }

// Categories repositorio de categorías.
func (s *Store) Categories() repository.CategoryRepository { return &categoryRepo{access{store: s}} }

// Brands repositorio de marcas.
func (s *Store) Brands() repository.BrandRepository { return &brandRepo{access{store: s}} }

// Suppliers repositorio de proveedores.
func (s *Store) Suppliers() repository.SupplierRepository { return &supplierRepo{access{store: s}} }

// Inflows repositorio de entradas.
func (s *Store) Inflows() repository.InflowRepository { return &inflowRepo{access{store: s}} }

// Outflows repositorio de salidas.
func (s *Store) Outflows() repository.OutflowRepository { return &outflowRepo{access{store: s}} }

// Metrics repositorio de métricas.
func (s *Store) Metrics() repository.MetricsRepository { return &metricsRepo{access{store: s}} }

// TxRunner implementación de inventory.TxRunner sobre el Store.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con el lock exclusivo. El estado solo se publica si fn devuelve nil.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inflowRepo repository.InflowRepository,
	outflowRepo repository.OutflowRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx := r.store.st.clone()
	a := access{store: r.store, tx: tx}
	if err := fn(&productRepo{a}, &inflowRepo{a}, &outflowRepo{a}); err != nil {
		return err
	}
	r.store.st = tx
	return nil
}

func containsFold(s, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// page aplica limit/offset sobre un slice ya ordenado.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func sortByName[T any](items []*T, name func(*T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(name(items[i])) < strings.ToLower(name(items[j]))
	})
}

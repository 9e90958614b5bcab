// Package apptest provee un almacén en memoria que implementa los puertos de
// repositorio para probar los casos de uso sin PostgreSQL. Tx toma un
// snapshot del estado y lo restaura ante error, imitando el rollback real:
// los tests pueden afirmar que un fallo no deja escrituras parciales.
package apptest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dcontreras/resort-ops/internal/domain/codes"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
	"github.com/dcontreras/resort-ops/internal/domain/repository"
)

type state struct {
	users      map[string]entity.User
	customers  map[string]entity.Customer
	suppliers  map[string]entity.Supplier
	categories map[string]entity.Category
	articles   map[string]entity.Article
	warehouses map[string]entity.Warehouse
	locations  map[string]entity.Location
	stock      map[string]entity.Stock // clave articleID + "|" + warehouseID
	movements  []entity.Movement
	orders     map[string]entity.Order
	items      map[string]entity.OrderItem
	itemSeq    []string // orden de inserción de líneas
	counters   map[codes.Kind]int
}

func newState() *state {
	return &state{
		users:      map[string]entity.User{},
		customers:  map[string]entity.Customer{},
		suppliers:  map[string]entity.Supplier{},
		categories: map[string]entity.Category{},
		articles:   map[string]entity.Article{},
		warehouses: map[string]entity.Warehouse{},
		locations:  map[string]entity.Location{},
		stock:      map[string]entity.Stock{},
		orders:     map[string]entity.Order{},
		items:      map[string]entity.OrderItem{},
		counters:   map[codes.Kind]int{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.articles {
		c.articles[k] = v
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.locations {
		c.locations[k] = v
	}
	for k, v := range s.stock {
		c.stock[k] = v
	}
	c.movements = append(c.movements, s.movements...)
	for k, v := range s.orders {
		o := v
		if v.ClosedAt != nil {
			t := *v.ClosedAt
			o.ClosedAt = &t
		}
		c.orders[k] = o
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	c.itemSeq = append(c.itemSeq, s.itemSeq...)
	for k, v := range s.counters {
		c.counters[k] = v
	}
	return c
}

// Store almacén en memoria. Implementa repository.TxRunner y, como TxRepos,
// expone repositorios sobre su propio estado para usarlo también fuera de
// una transacción.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Tx ejecuta fn sobre un snapshot; lo descarta si fn falla.
func (s *Store) Tx(ctx context.Context, fn func(r repository.TxRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.st.clone()
	if err := fn(s); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) Users() repository.UserRepository           { return userRepo{s} }
func (s *Store) Customers() repository.CustomerRepository   { return customerRepo{s} }
func (s *Store) Suppliers() repository.SupplierRepository   { return supplierRepo{s} }
func (s *Store) Categories() repository.CategoryRepository  { return categoryRepo{s} }
func (s *Store) Articles() repository.ArticleRepository     { return articleRepo{s} }
func (s *Store) Warehouses() repository.WarehouseRepository { return warehouseRepo{s} }
func (s *Store) Stock() repository.StockRepository          { return stockRepo{s} }
func (s *Store) Movements() repository.MovementRepository   { return movementRepo{s} }
func (s *Store) Orders() repository.OrderRepository         { return orderRepo{s} }
func (s *Store) Codes() repository.CodeGenerator            { return codeGen{s} }

// Locations devuelve el repositorio de villas/mesas (fuera de TxRepos porque
// las locaciones no participan en transacciones de stock).
func (s *Store) Locations() repository.LocationRepository { return locationRepo{s} }

// Seed helpers.

// SeedArticle registra un artículo directamente en el estado.
func (s *Store) SeedArticle(a entity.Article) { s.st.articles[a.ID] = a }

// SeedWarehouse registra un almacén directamente en el estado.
func (s *Store) SeedWarehouse(w entity.Warehouse) { s.st.warehouses[w.ID] = w }

// SeedCustomer registra un cliente directamente en el estado.
func (s *Store) SeedCustomer(c entity.Customer) { s.st.customers[c.ID] = c }

// SeedLocation registra una villa o mesa directamente en el estado.
func (s *Store) SeedLocation(l entity.Location) { s.st.locations[l.ID] = l }

// SeedStock fija la cantidad de un par (artículo, almacén).
func (s *Store) SeedStock(articleID, warehouseID string, qty decimal.Decimal) {
	key := articleID + "|" + warehouseID
	s.st.stock[key] = entity.Stock{
		ArticleID:   articleID,
		WarehouseID: warehouseID,
		Quantity:    qty,
		UpdatedAt:   time.Now(),
	}
}

// StockQty devuelve la cantidad del libro para un par; cero si no hay entrada.
func (s *Store) StockQty(articleID, warehouseID string) decimal.Decimal {
	if st, ok := s.st.stock[articleID+"|"+warehouseID]; ok {
		return st.Quantity
	}
	return decimal.Zero
}

// HasStockEntry indica si el par tiene entrada en el libro.
func (s *Store) HasStockEntry(articleID, warehouseID string) bool {
	_, ok := s.st.stock[articleID+"|"+warehouseID]
	return ok
}

// MovementLog devuelve copia del diario completo en orden de inserción.
func (s *Store) MovementLog() []entity.Movement {
	out := make([]entity.Movement, len(s.st.movements))
	copy(out, s.st.movements)
	return out
}

// Order devuelve la orden tal como está persistida.
func (s *Store) Order(id string) (entity.Order, bool) {
	o, ok := s.st.orders[id]
	return o, ok
}

// --- repositorios ---

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.st.users[u.ID] = *u
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.s.st.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.st.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r userRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.st.users {
		c := u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r userRepo) Update(_ context.Context, u *entity.User) error {
	r.s.st.users[u.ID] = *u
	return nil
}

type customerRepo struct{ s *Store }

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.st.customers[c.ID] = *c
	return nil
}

func (r customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if c, ok := r.s.st.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r customerRepo) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.s.st.customers {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r customerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.s.st.customers[c.ID] = *c
	return nil
}

type supplierRepo struct{ s *Store }

func (r supplierRepo) Create(_ context.Context, p *entity.Supplier) error {
	r.s.st.suppliers[p.ID] = *p
	return nil
}

func (r supplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	if p, ok := r.s.st.suppliers[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r supplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, p := range r.s.st.suppliers {
		pp := p
		out = append(out, &pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r supplierRepo) Update(_ context.Context, p *entity.Supplier) error {
	r.s.st.suppliers[p.ID] = *p
	return nil
}

func (r supplierRepo) Delete(_ context.Context, id string) error {
	delete(r.s.st.suppliers, id)
	return nil
}

type categoryRepo struct{ s *Store }

func (r categoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.st.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if c, ok := r.s.st.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r categoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.s.st.categories {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r categoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.st.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) Delete(_ context.Context, id string) error {
	delete(r.s.st.categories, id)
	return nil
}

type articleRepo struct{ s *Store }

func (r articleRepo) Create(_ context.Context, a *entity.Article) error {
	r.s.st.articles[a.ID] = *a
	return nil
}

func (r articleRepo) GetByID(_ context.Context, id string) (*entity.Article, error) {
	if a, ok := r.s.st.articles[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r articleRepo) GetByCode(_ context.Context, code string) (*entity.Article, error) {
	for _, a := range r.s.st.articles {
		if a.Code == code {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r articleRepo) List(_ context.Context, categoryID string, limit, offset int) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, a := range r.s.st.articles {
		if categoryID != "" && a.CategoryID != categoryID {
			continue
		}
		aa := a
		out = append(out, &aa)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r articleRepo) Update(_ context.Context, a *entity.Article) error {
	r.s.st.articles[a.ID] = *a
	return nil
}

type warehouseRepo struct{ s *Store }

func (r warehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.st.warehouses[w.ID] = *w
	return nil
}

func (r warehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	if w, ok := r.s.st.warehouses[id]; ok {
		return &w, nil
	}
	return nil, nil
}

func (r warehouseRepo) List(_ context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.st.warehouses {
		ww := w
		out = append(out, &ww)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r warehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	r.s.st.warehouses[w.ID] = *w
	return nil
}

type locationRepo struct{ s *Store }

func (r locationRepo) Create(_ context.Context, l *entity.Location) error {
	r.s.st.locations[l.ID] = *l
	return nil
}

func (r locationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	if l, ok := r.s.st.locations[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (r locationRepo) List(_ context.Context, kind string, limit, offset int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.st.locations {
		if kind != "" && l.Kind != kind {
			continue
		}
		ll := l
		out = append(out, &ll)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r locationRepo) Update(_ context.Context, l *entity.Location) error {
	r.s.st.locations[l.ID] = *l
	return nil
}

func (r locationRepo) Delete(_ context.Context, id string) error {
	delete(r.s.st.locations, id)
	return nil
}

type stockRepo struct{ s *Store }

func (r stockRepo) Get(_ context.Context, articleID, warehouseID string) (*entity.Stock, error) {
	if st, ok := r.s.st.stock[articleID+"|"+warehouseID]; ok {
		return &st, nil
	}
	return nil, nil
}

func (r stockRepo) GetForUpdate(ctx context.Context, articleID, warehouseID string) (*entity.Stock, error) {
	return r.Get(ctx, articleID, warehouseID)
}

func (r stockRepo) Upsert(_ context.Context, st *entity.Stock) error {
	r.s.st.stock[st.ArticleID+"|"+st.WarehouseID] = *st
	return nil
}

func (r stockRepo) ListByArticle(_ context.Context, articleID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, st := range r.s.st.stock {
		if st.ArticleID == articleID {
			ss := st
			out = append(out, &ss)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

func (r stockRepo) TotalForArticle(_ context.Context, articleID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, st := range r.s.st.stock {
		if st.ArticleID == articleID {
			total = total.Add(st.Quantity)
		}
	}
	return total, nil
}

type movementRepo struct{ s *Store }

func (r movementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.s.st.movements = append(r.s.st.movements, *m)
	return nil
}

func (r movementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for _, m := range r.s.st.movements {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, nil
}

func (r movementRepo) list(match func(entity.Movement) bool, from, to *time.Time) []*entity.Movement {
	var out []*entity.Movement
	for _, m := range r.s.st.movements {
		if !match(m) {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		mm := m
		out = append(out, &mm)
	}
	return out
}

func (r movementRepo) ListByArticle(_ context.Context, articleID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.list(func(m entity.Movement) bool { return m.ArticleID == articleID }, from, to), nil
}

func (r movementRepo) ListByWarehouse(_ context.Context, warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.list(func(m entity.Movement) bool { return m.WarehouseID == warehouseID }, from, to), nil
}

func (r movementRepo) ListByOrder(_ context.Context, orderID string) ([]*entity.Movement, error) {
	return r.list(func(m entity.Movement) bool { return m.OrderID == orderID }, nil, nil), nil
}

type orderRepo struct{ s *Store }

func (r orderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.st.orders[o.ID] = *o
	return nil
}

func (r orderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if o, ok := r.s.st.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (r orderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r orderRepo) Update(_ context.Context, o *entity.Order) error {
	r.s.st.orders[o.ID] = *o
	return nil
}

func (r orderRepo) List(_ context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.st.orders {
		if status != "" && o.Status != status {
			continue
		}
		oo := o
		out = append(out, &oo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r orderRepo) CreateItem(_ context.Context, it *entity.OrderItem) error {
	r.s.st.items[it.ID] = *it
	r.s.st.itemSeq = append(r.s.st.itemSeq, it.ID)
	return nil
}

func (r orderRepo) GetItem(_ context.Context, orderID, itemID string) (*entity.OrderItem, error) {
	if it, ok := r.s.st.items[itemID]; ok && it.OrderID == orderID {
		return &it, nil
	}
	return nil, nil
}

func (r orderRepo) UpdateItem(_ context.Context, it *entity.OrderItem) error {
	r.s.st.items[it.ID] = *it
	return nil
}

func (r orderRepo) DeleteItem(_ context.Context, orderID, itemID string) error {
	if it, ok := r.s.st.items[itemID]; ok && it.OrderID == orderID {
		delete(r.s.st.items, itemID)
	}
	return nil
}

func (r orderRepo) ListItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, id := range r.s.st.itemSeq {
		it, ok := r.s.st.items[id]
		if !ok || it.OrderID != orderID {
			continue
		}
		ii := it
		out = append(out, &ii)
	}
	return out, nil
}

type codeGen struct{ s *Store }

func (g codeGen) Next(_ context.Context, kind codes.Kind) (string, error) {
	spec, ok := codes.SpecFor(kind)
	if !ok {
		return "", nil
	}
	g.s.st.counters[kind]++
	return spec.Format(g.s.st.counters[kind]), nil
}

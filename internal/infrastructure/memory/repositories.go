package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.ClientRepository   = (*ClientRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.OrderRepository    = (*OrderRepo)(nil)
	_ repository.SettingsRepository = (*SettingsRepo)(nil)
	_ ports.ClientTxRunner          = (*Store)(nil)
	_ ports.OrderTxRunner           = (*Store)(nil)
)

// Store conjunto de repositórios em memória com as mesmas regras dos de
// PostgreSQL (unicidade de e-mail, ordenações, ON DELETE SET NULL).
type Store struct {
	mu         sync.Mutex
	users      map[string]entity.User
	clients    map[string]entity.Client
	products   map[string]entity.Product
	categories map[string]entity.Category
	orders     map[string]entity.Order
	settings   *entity.Settings

	Users      *UserRepo
	Clients    *ClientRepo
	Products   *ProductRepo
	Categories *CategoryRepo
	Orders     *OrderRepo
	Settings   *SettingsRepo
}

// NewStore cria um store vazio.
func NewStore() *Store {
	s := &Store{
		users:      make(map[string]entity.User),
		clients:    make(map[string]entity.Client),
		products:   make(map[string]entity.Product),
		categories: make(map[string]entity.Category),
		orders:     make(map[string]entity.Order),
	}
	s.Users = &UserRepo{s: s}
	s.Clients = &ClientRepo{s: s}
	s.Products = &ProductRepo{s: s}
	s.Categories = &CategoryRepo{s: s}
	s.Orders = &OrderRepo{s: s}
	s.Settings = &SettingsRepo{s: s}
	return s
}

// RunClients executa fn e desfaz clientes e usuários se fn falhar.
func (s *Store) RunClients(_ context.Context, fn func(clients repository.ClientRepository, users repository.UserRepository) error) error {
	s.mu.Lock()
	users := make(map[string]entity.User, len(s.users))
	for k, v := range s.users {
		users[k] = v
	}
	clients := make(map[string]entity.Client, len(s.clients))
	for k, v := range s.clients {
		clients[k] = v
	}
	s.mu.Unlock()

	if err := fn(s.Clients, s.Users); err != nil {
		s.mu.Lock()
		s.users, s.clients = users, clients
		s.mu.Unlock()
		return err
	}
	return nil
}

// RunOrders executa fn; pedidos são gravados inteiros, não há o que desfazer.
func (s *Store) RunOrders(_ context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(s.Orders)
}

// ─── Users ────────────────────────────────────────────────────────────────────

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context, status string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if status == "" || u.Status == status {
			cp := u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepo) ListByClientID(_ context.Context, clientID string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if clientID != "" && u.ClientID == clientID {
			cp := u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, existing := range r.s.users {
		if id != u.ID && strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	r.s.users[id] = u
	return nil
}

func (r *UserRepo) CountByStatus(_ context.Context, status string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, u := range r.s.users {
		if u.Status == status {
			n++
		}
	}
	return n, nil
}

// ─── Clients ──────────────────────────────────────────────────────────────────

type ClientRepo struct{ s *Store }

func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClientRepo) List(_ context.Context, search string) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(search)
	var out []*entity.Client
	for _, c := range r.s.clients {
		if q == "" || strings.Contains(strings.ToLower(c.RazaoSocial), q) ||
			strings.Contains(strings.ToLower(c.NomeFantasia), q) || strings.Contains(c.CNPJ, search) {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RazaoSocial < out[j].RazaoSocial })
	return out, nil
}

func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.clients, id)
	for uid, u := range r.s.users {
		if u.ClientID == id {
			u.ClientID = ""
			r.s.users[uid] = u
		}
	}
	return nil
}

// ─── Products ─────────────────────────────────────────────────────────────────

type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = copyProduct(*p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := copyProduct(p)
	return &cp, nil
}

func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.s.products {
		if (f.Status == "" || p.Status == f.Status) && (f.CategoryID == "" || p.CategoryID == f.CategoryID) {
			cp := copyProduct(p)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = copyProduct(*p)
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func copyProduct(p entity.Product) entity.Product {
	p.Images = append([]string(nil), p.Images...)
	p.Variations = append([]entity.Variation(nil), p.Variations...)
	return p
}

// ─── Categories ───────────────────────────────────────────────────────────────

type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	cp.Subcategories = append([]string(nil), c.Subcategories...)
	r.s.categories[c.ID] = cp
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	c.Subcategories = append([]string(nil), c.Subcategories...)
	return &c, nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := c
		cp.Subcategories = append([]string(nil), c.Subcategories...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	cp.Subcategories = append([]string(nil), c.Subcategories...)
	r.s.categories[c.ID] = cp
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.categories, id)
	for pid, p := range r.s.products {
		if p.CategoryID == id {
			p.CategoryID = ""
			r.s.products[pid] = p
		}
	}
	return nil
}

// ─── Orders ───────────────────────────────────────────────────────────────────

type OrderRepo struct{ s *Store }

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.orders[o.ID] = copyOrder(*o)
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := copyOrder(o)
	return &cp, nil
}

func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *OrderRepo) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.s.orders {
		if f.UserID != "" && o.UserID != f.UserID {
			continue
		}
		if len(f.Statuses) > 0 && !hasStatus(f.Statuses, o.Status) {
			continue
		}
		if !f.Since.IsZero() && o.CreatedAt.Before(f.Since) {
			continue
		}
		cp := copyOrder(o)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *OrderRepo) Update(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.orders[o.ID] = copyOrder(*o)
	return nil
}

func hasStatus(list []entity.OrderStatus, s entity.OrderStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func copyOrder(o entity.Order) entity.Order {
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	o.History = append([]entity.HistoryEntry(nil), o.History...)
	return o
}

// ─── Settings ─────────────────────────────────────────────────────────────────

type SettingsRepo struct{ s *Store }

func (r *SettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.settings == nil {
		return nil, nil
	}
	cp := copySettings(*r.s.settings)
	return &cp, nil
}

func (r *SettingsRepo) Save(_ context.Context, st *entity.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := copySettings(*st)
	r.s.settings = &cp
	return nil
}

func copySettings(s entity.Settings) entity.Settings {
	s.PriceTables = append([]entity.Option{}, s.PriceTables...)
	s.PaymentMethods = append([]entity.Option{}, s.PaymentMethods...)
	s.Carriers = append([]entity.Option{}, s.Carriers...)
	return s
}

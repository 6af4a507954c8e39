package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/events"
)

// In-memory repository fakes shared by the service tests. They implement the
// same not-found semantics as the Postgres implementations: pgx.ErrNoRows.

type fakeCustomerRepo struct {
	customers map[int]*domain.Customer
	nextID    int
}

func newFakeCustomerRepo(customers ...*domain.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[int]*domain.Customer{}, nextID: 1}
	for _, c := range customers {
		if c.ID == 0 {
			c.ID = r.nextID
		}
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	customer.ID = r.nextID
	r.nextID++
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	c, ok := r.customers[id]
	if !ok {
		return pgx.ErrNoRows
	}
	c.PasswordHash = passwordHash
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.customers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int) (*domain.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Search(_ context.Context, _ string) ([]domain.Customer, error) {
	return r.List(context.Background())
}

func (r *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

type fakeFoodRepo struct {
	foods map[int]*domain.Food
}

func newFakeFoodRepo(foods ...*domain.Food) *fakeFoodRepo {
	r := &fakeFoodRepo{foods: map[int]*domain.Food{}}
	for _, f := range foods {
		r.foods[f.ID] = f
	}
	return r
}

func (r *fakeFoodRepo) Create(_ context.Context, food *domain.Food) error {
	r.foods[food.ID] = food
	return nil
}

func (r *fakeFoodRepo) Update(_ context.Context, food *domain.Food) error {
	if _, ok := r.foods[food.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.foods[food.ID] = food
	return nil
}

func (r *fakeFoodRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.foods[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.foods, id)
	return nil
}

func (r *fakeFoodRepo) GetByID(_ context.Context, id int) (*domain.Food, error) {
	if f, ok := r.foods[id]; ok {
		return f, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeFoodRepo) List(_ context.Context) ([]domain.Food, error) {
	out := make([]domain.Food, 0, len(r.foods))
	for _, f := range r.foods {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFoodRepo) Search(_ context.Context, _ string) ([]domain.Food, error) {
	return r.List(context.Background())
}

type fakeCartRepo struct {
	carts      map[int]*domain.Cart // keyed by customer ID
	nextCartID int
	nextItemID int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[int]*domain.Cart{}, nextCartID: 1, nextItemID: 1}
}

func (r *fakeCartRepo) Create(_ context.Context, customerID int) (*domain.Cart, error) {
	cart := &domain.Cart{ID: r.nextCartID, CustomerID: customerID}
	r.nextCartID++
	r.carts[customerID] = cart
	return cart, nil
}

func (r *fakeCartRepo) GetByCustomer(_ context.Context, customerID int) (*domain.Cart, error) {
	if cart, ok := r.carts[customerID]; ok {
		return cart, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCartRepo) AddItem(_ context.Context, item *domain.CartItem) error {
	for _, cart := range r.carts {
		if cart.ID != item.CartID {
			continue
		}
		for i := range cart.Items {
			if cart.Items[i].FoodID == item.FoodID {
				cart.Items[i].Quantity += item.Quantity
				return nil
			}
		}
		item.ID = r.nextItemID
		r.nextItemID++
		cart.Items = append(cart.Items, *item)
		return nil
	}
	return pgx.ErrNoRows
}

func (r *fakeCartRepo) GetItem(_ context.Context, itemID int) (*domain.CartItem, error) {
	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				return &cart.Items[i], nil
			}
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCartRepo) UpdateItemQuantity(_ context.Context, itemID, quantity int) error {
	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items[i].Quantity = quantity
				return nil
			}
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeCartRepo) DeleteItem(_ context.Context, itemID int) error {
	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeCartRepo) ClearByCustomer(_ context.Context, customerID int) error {
	if cart, ok := r.carts[customerID]; ok {
		cart.Items = nil
	}
	return nil
}

type fakeOrderRepo struct {
	orders []*domain.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	order.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) GetByOrderID(_ context.Context, orderID string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeOrderRepo) ListByCustomer(_ context.Context, customerID int) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) error {
	for _, o := range r.orders {
		if o.OrderID == orderID {
			o.Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

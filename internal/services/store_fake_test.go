package services

import (
	"sort"
	"sync"

	"github.com/Weryck-Lemos/ElectroStock/internal/models"
	"github.com/Weryck-Lemos/ElectroStock/internal/repository"

	"gorm.io/gorm"
)

// fakeStore is an in-memory repository.Store for service tests. Atomic
// snapshots the state and rolls back on error, which gives tests the same
// all-or-nothing behavior as a real transaction.
type fakeStore struct {
	mu         sync.Mutex
	users      map[uint]models.User
	categories map[uint]models.Category
	items      map[uint]models.Item
	orders     map[uint]models.Order
	orderItems map[uint]models.OrderItem
	nextID     uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[uint]models.User),
		categories: make(map[uint]models.Category),
		items:      make(map[uint]models.Item),
		orders:     make(map[uint]models.Order),
		orderItems: make(map[uint]models.OrderItem),
	}
}

type fakeState struct {
	users      map[uint]models.User
	categories map[uint]models.Category
	items      map[uint]models.Item
	orders     map[uint]models.Order
	orderItems map[uint]models.OrderItem
	nextID     uint
}

func cloneMap[V any](m map[uint]V) map[uint]V {
	out := make(map[uint]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *fakeStore) snapshot() fakeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeState{
		users:      cloneMap(s.users),
		categories: cloneMap(s.categories),
		items:      cloneMap(s.items),
		orders:     cloneMap(s.orders),
		orderItems: cloneMap(s.orderItems),
		nextID:     s.nextID,
	}
}

func (s *fakeStore) restore(state fakeState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = state.users
	s.categories = state.categories
	s.items = state.items
	s.orders = state.orders
	s.orderItems = state.orderItems
	s.nextID = state.nextID
}

func (s *fakeStore) Atomic(fn func(tx repository.Store) error) error {
	state := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(state)
		return err
	}
	return nil
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) Users() repository.UserRepository { return &fakeUserRepo{s} }

func (s *fakeStore) Categories() repository.CategoryRepository { return &fakeCategoryRepo{s} }

func (s *fakeStore) Items() repository.ItemRepository { return &fakeItemRepo{s} }

func (s *fakeStore) Orders() repository.OrderRepository { return &fakeOrderRepo{s} }

func (s *fakeStore) OrderItems() repository.OrderItemRepository { return &fakeOrderItemRepo{s} }

// users

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.ID == 0 {
		user.ID = r.s.id()
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]models.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

// categories

type fakeCategoryRepo struct{ s *fakeStore }

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if category.ID == 0 {
		category.ID = r.s.id()
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	category, ok := r.s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &category, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, category := range r.s.categories {
		if category.Name == name {
			c := category
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	categories := make([]models.Category, 0, len(r.s.categories))
	for _, category := range r.s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *fakeCategoryRepo) Update(category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

// items

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(item *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if item.ID == 0 {
		item.ID = r.s.id()
	}
	r.s.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) GetByID(id uint) (*models.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *fakeItemRepo) GetByIDForUpdate(id uint) (*models.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) GetAll() ([]models.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items := make([]models.Item, 0, len(r.s.items))
	for _, item := range r.s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeItemRepo) CountByCategory(categoryID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, item := range r.s.items {
		if item.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeItemRepo) Update(item *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

// orders

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if order.ID == 0 {
		order.ID = r.s.id()
	}
	stored := *order
	stored.Items = nil
	r.s.orders[order.ID] = stored
	return nil
}

func (r *fakeOrderRepo) get(id uint) (*models.Order, error) {
	order, ok := r.s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for _, line := range r.s.orderItems {
		if line.OrderID == id {
			order.Items = append(order.Items, line)
		}
	}
	sort.Slice(order.Items, func(i, j int) bool { return order.Items[i].ID < order.Items[j].ID })
	return &order, nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.get(id)
}

func (r *fakeOrderRepo) GetByIDForUpdate(id uint) (*models.Order, error) {
	return r.GetByID(id)
}

func (r *fakeOrderRepo) GetByUserID(userID uint) ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var orders []models.Order
	for id, order := range r.s.orders {
		if order.UserID == userID {
			full, _ := r.get(id)
			orders = append(orders, *full)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	orders := make([]models.Order, 0, len(r.s.orders))
	for id := range r.s.orders {
		full, _ := r.get(id)
		orders = append(orders, *full)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	r.s.orders[id] = order
	return nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.orders, id)
	return nil
}

// order items

type fakeOrderItemRepo struct{ s *fakeStore }

func (r *fakeOrderItemRepo) Create(orderItem *models.OrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if orderItem.ID == 0 {
		orderItem.ID = r.s.id()
	}
	r.s.orderItems[orderItem.ID] = *orderItem
	return nil
}

func (r *fakeOrderItemRepo) GetByID(id uint) (*models.OrderItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	orderItem, ok := r.s.orderItems[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &orderItem, nil
}

func (r *fakeOrderItemRepo) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var orderItems []models.OrderItem
	for _, orderItem := range r.s.orderItems {
		if orderItem.OrderID == orderID {
			orderItems = append(orderItems, orderItem)
		}
	}
	sort.Slice(orderItems, func(i, j int) bool { return orderItems[i].ID < orderItems[j].ID })
	return orderItems, nil
}

func (r *fakeOrderItemRepo) GetAll() ([]models.OrderItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	orderItems := make([]models.OrderItem, 0, len(r.s.orderItems))
	for _, orderItem := range r.s.orderItems {
		orderItems = append(orderItems, orderItem)
	}
	sort.Slice(orderItems, func(i, j int) bool { return orderItems[i].ID < orderItems[j].ID })
	return orderItems, nil
}

func (r *fakeOrderItemRepo) CountByItem(itemID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, orderItem := range r.s.orderItems {
		if orderItem.ItemID == itemID {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrderItemRepo) Update(orderItem *models.OrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orderItems[orderItem.ID] = *orderItem
	return nil
}

func (r *fakeOrderItemRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.orderItems, id)
	return nil
}

func (r *fakeOrderItemRepo) DeleteByOrderID(orderID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, orderItem := range r.s.orderItems {
		if orderItem.OrderID == orderID {
			delete(r.s.orderItems, id)
		}
	}
	return nil
}

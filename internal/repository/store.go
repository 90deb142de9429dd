package repository

import (
	"gorm.io/gorm"
)

// Store bundles the per-entity repositories and lets services run a group of
// operations inside one database transaction. Repositories obtained from the
// Store passed to Atomic are bound to that transaction.
type Store interface {
	Users() UserRepository
	Categories() CategoryRepository
	Items() ItemRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Atomic(fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository {
	return NewUserRepository(s.db)
}

func (s *gormStore) Categories() CategoryRepository {
	return NewCategoryRepository(s.db)
}

func (s *gormStore) Items() ItemRepository {
	return NewItemRepository(s.db)
}

func (s *gormStore) Orders() OrderRepository {
	return NewOrderRepository(s.db)
}

func (s *gormStore) OrderItems() OrderItemRepository {
	return NewOrderItemRepository(s.db)
}

func (s *gormStore) Atomic(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

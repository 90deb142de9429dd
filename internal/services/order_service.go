package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/Weryck-Lemos/ElectroStock/internal/cache"
	"github.com/Weryck-Lemos/ElectroStock/internal/models"
	"github.com/Weryck-Lemos/ElectroStock/internal/repository"

	"gorm.io/gorm"
)

// OrderLine is one (item, quantity) entry of an order being placed.
type OrderLine struct {
	ItemID   uint
	Quantity int
}

type OrderService interface {
	Place(userID uint, lines []OrderLine) (*models.Order, error)
	GetByID(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByUser(userID uint) ([]models.Order, error)
	Delete(id uint) error
	Approve(id uint) (*models.Order, error)
	Reject(id uint) (*models.Order, error)
	Finish(id uint) (*models.Order, error)
}

type orderService struct {
	store repository.Store
	cache *cache.Client
}

// NewOrderService builds the order engine. Every stock-affecting operation
// runs inside one Store.Atomic transaction with row locks on the touched
// items, so concurrent operations on the same item serialize and stock can
// never go negative or be double-restored.
func NewOrderService(store repository.Store, cacheClient *cache.Client) OrderService {
	return &orderService{store: store, cache: cacheClient}
}

// Place validates every line against current stock, debits stock per line and
// persists the order as pending. Any failing line aborts the transaction, so
// no stock is mutated unless the whole order fits.
func (s *orderService) Place(userID uint, lines []OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var order *models.Order
	err := s.store.Atomic(func(tx repository.Store) error {
		order = &models.Order{UserID: userID, Status: string(models.OrderPending)}
		if err := tx.Orders().Create(order); err != nil {
			return err
		}

		for _, line := range lines {
			if line.Quantity <= 0 {
				return ErrInvalidQuantity
			}

			item, err := tx.Items().GetByIDForUpdate(line.ItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrItemNotFound, line.ItemID)
				}
				return err
			}
			if line.Quantity > item.Stock {
				return fmt.Errorf("%w for %q", ErrInsufficientStock, item.Name)
			}

			item.Stock -= line.Quantity
			if err := tx.Items().Update(item); err != nil {
				return err
			}
			if err := tx.OrderItems().Create(&models.OrderItem{
				OrderID:  order.ID,
				ItemID:   item.ID,
				Quantity: line.Quantity,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateItems()
	return s.GetByID(order.ID)
}

func (s *orderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.store.Orders().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetAll() ([]models.Order, error) {
	return s.store.Orders().GetAll()
}

func (s *orderService) GetByUser(userID uint) ([]models.Order, error) {
	return s.store.Orders().GetByUserID(userID)
}

// Delete removes a pending order, restoring the stock of every line.
func (s *orderService) Delete(id uint) error {
	err := s.store.Atomic(func(tx repository.Store) error {
		order, err := lockOrder(tx, id)
		if err != nil {
			return err
		}
		if order.Status != string(models.OrderPending) {
			return fmt.Errorf("%w: only pending orders can be deleted", ErrOrderNotPending)
		}

		if err := restoreStock(tx, order.Items); err != nil {
			return err
		}
		if err := tx.OrderItems().DeleteByOrderID(order.ID); err != nil {
			return err
		}
		return tx.Orders().Delete(order.ID)
	})
	if err != nil {
		return err
	}

	s.invalidateItems()
	return nil
}

// Approve moves a pending order to approved. No stock side effect.
func (s *orderService) Approve(id uint) (*models.Order, error) {
	return s.transition(id, models.OrderPending, models.OrderApproved, false)
}

// Reject moves a pending order to rejected and restores the stock debited at
// placement.
func (s *orderService) Reject(id uint) (*models.Order, error) {
	return s.transition(id, models.OrderPending, models.OrderRejected, true)
}

// Finish moves an approved order to finished. No stock side effect.
func (s *orderService) Finish(id uint) (*models.Order, error) {
	return s.transition(id, models.OrderApproved, models.OrderFinished, false)
}

func (s *orderService) transition(id uint, from, to models.OrderStatus, restock bool) (*models.Order, error) {
	err := s.store.Atomic(func(tx repository.Store) error {
		order, err := lockOrder(tx, id)
		if err != nil {
			return err
		}
		if order.Status != string(from) {
			return fmt.Errorf("%w: order must be %q", ErrInvalidTransition, from)
		}

		if restock {
			if err := restoreStock(tx, order.Items); err != nil {
				return err
			}
		}
		return tx.Orders().UpdateStatus(order.ID, string(to))
	})
	if err != nil {
		return nil, err
	}

	if restock {
		s.invalidateItems()
	}
	return s.GetByID(id)
}

func lockOrder(tx repository.Store, id uint) (*models.Order, error) {
	order, err := tx.Orders().GetByIDForUpdate(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func restoreStock(tx repository.Store, lines []models.OrderItem) error {
	for _, line := range lines {
		item, err := tx.Items().GetByIDForUpdate(line.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Items referenced by order lines are delete-protected;
				// tolerate a missing row rather than failing the restore.
				continue
			}
			return err
		}
		item.Stock += line.Quantity
		if err := tx.Items().Update(item); err != nil {
			return err
		}
	}
	return nil
}

func (s *orderService) invalidateItems() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateItems(); err != nil {
		log.Printf("Warning: item cache invalidation failed: %v", err)
	}
}
